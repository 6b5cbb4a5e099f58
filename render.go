package novelfetch

import (
	"fmt"
	"html"
	"strings"
)

// ChapterHeading returns the display heading for a chapter.
func ChapterHeading(ch Chapter) string {
	return fmt.Sprintf("Chapter %d: %s", ch.Number, ch.Title)
}

// RenderHTML renders a novel as the standalone HTML document used as input
// for e-book conversion. Chapter content is embedded as is.
func RenderHTML(n *Novel) string {
	title := html.EscapeString(n.Title)

	parts := []string{
		"<!DOCTYPE html>",
		"<html>",
		"<head>",
		`<meta charset="utf-8">`,
		"<title>" + title + "</title>",
		"</head>",
		"<body>",
		"<h1>" + title + "</h1>",
	}

	for _, ch := range n.Chapters {
		parts = append(parts, "<h2>"+html.EscapeString(ChapterHeading(ch))+"</h2>")
		parts = append(parts, ch.Content)
	}

	parts = append(parts, "</body>", "</html>")
	return strings.Join(parts, "\n")
}

// RenderMarkdown renders a novel as a Markdown document.
// Chapters with no content keep their heading.
func RenderMarkdown(n *Novel, conv Converter) (string, error) {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(n.Title)
	b.WriteString("\n")

	for _, ch := range n.Chapters {
		b.WriteString("\n## ")
		b.WriteString(ChapterHeading(ch))
		b.WriteString("\n")

		if strings.TrimSpace(ch.Content) == "" {
			continue
		}

		md, err := conv.Convert(ch.Content)
		if err != nil {
			return "", fmt.Errorf("convert chapter %d: %w", ch.Number, err)
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(md))
		b.WriteString("\n")
	}

	return b.String(), nil
}
