// Package novelfetch fetches web novels from Honeyfeed and turns them into
// e-reader friendly documents. It downloads a novel's table of contents,
// extracts every chapter's narrative text into a small, deterministic HTML
// subset, and can render the result to HTML, Markdown, EPUB or AZW3.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, calibre/).
package novelfetch
