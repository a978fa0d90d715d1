// Package preview assembles the three channels into one renderable document
// and embeds it in an isolated frame.
package preview

import "strings"

// Document is a complete HTML document produced by Compose.
type Document string

// Compose embeds style in a <style> element, markup as the body content and
// script in a trailing <script> element. Content is inserted literally, with
// no escaping: the author of the buffers is the only author of the preview.
// Isolation comes from rendering the document inside a sandboxed frame (see
// Frame), not from sanitizing it.
func Compose(markup, style, script string) Document {
	var b strings.Builder
	b.Grow(len(markup) + len(style) + len(script) + 160)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <style>\n")
	b.WriteString(style)
	b.WriteString("\n  </style>\n</head>\n<body>\n")
	b.WriteString(markup)
	b.WriteString("\n  <script>\n")
	b.WriteString(script)
	b.WriteString("\n  </script>\n</body>\n</html>\n")

	return Document(b.String())
}

// String returns the document source.
func (d Document) String() string {
	return string(d)
}
