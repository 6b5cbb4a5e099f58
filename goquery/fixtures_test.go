package goquery_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// honeyfeedTOCPage mirrors the structure of a Honeyfeed chapter list.
const honeyfeedTOCPage = `<!DOCTYPE html>
<html>
<head><title>Reincarnated as a Staff | Honeyfeed</title></head>
<body>
<header>
	<nav><a href="/">Honeyfeed</a><a href="/novels">Novels</a></nav>
</header>
<main>
	<h1 class="novel-title">
		Reincarnated as a Staff
	</h1>
	<div class="chapter-list">
		<a href="/chapters/12345">Chapter 1: Awakening</a>
		<a href="/chapters/12346">Chapter 2: The Hero</a>
		<a href="/chapters/12347">Chapter 3: Dungeon</a>
	</div>
	<div class="recommended">
		<a href="/chapters/99999">Someone Else's Chapter</a>
	</div>
</main>
<footer>
	<p>Join us on Honeyfeed SNS</p>
	<p>© 2025 qdopp</p>
</footer>
</body>
</html>`

// honeyfeedChapterPage mirrors the structure of a Honeyfeed chapter page,
// including the login prompt and SNS footer around the chapter body.
const honeyfeedChapterPage = `<!DOCTYPE html>
<html>
<head><title>Chapter 1: Awakening | Honeyfeed</title></head>
<body>
<header>
	<nav><a href="/">Honeyfeed</a></nav>
	<div class="login-prompt">
		<p>Already a Honeyfeed member? <a href="/login">Log in</a></p>
		<p>Don't have an account? <a href="/signup">Sign up</a></p>
	</div>
</header>
<div id="chapter-body">
	<div class="wrap-body">
		<div class="pages">
			<div id="page-1" class="page">
				<p>The first thing I do upon opening my eyes is panic.</p>
				<p>&nbsp;</p>
				<p><b><i>[Divine Staff of Holy Light]<br>Attributes: Holy, Wind<br>Durability: 100/100</i></b></p>
				<p style="text-align: center"><span class="highlight">I am a <em>staff</em>.</span></p>
			</div>
			<div id="page-2" class="page">
				<p>The hero raises me high and shouts.</p>
				<p>“GROUND!!!!!”</p>
			</div>
		</div>
	</div>
	<div class="chapter-actions">
		<p>Already a Honeyfeed member? Log in to leave a comment.</p>
	</div>
</div>
<footer>
	<p>Join us on Honeyfeed SNS</p>
	<p>© 2025 qdopp</p>
</footer>
</body>
</html>`

func newDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}
