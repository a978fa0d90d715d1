package diff

import "strings"

// Markers delimit inserted and deleted text in a rendering.
type Markers struct {
	InsertStart string
	InsertEnd   string
	DeleteStart string
	DeleteEnd   string
}

var (
	// HTMLMarkers wraps edits in <ins> and <del> elements.
	HTMLMarkers = Markers{InsertStart: "<ins>", InsertEnd: "</ins>", DeleteStart: "<del>", DeleteEnd: "</del>"}

	// TextMarkers uses the word-diff notation {+added+} and [-removed-].
	TextMarkers = Markers{InsertStart: "{+", InsertEnd: "+}", DeleteStart: "[-", DeleteEnd: "-]"}
)

// MarkersByName returns a preset by name ("html" or "text").
func MarkersByName(name string) (Markers, bool) {
	switch strings.ToLower(name) {
	case "html":
		return HTMLMarkers, true
	case "text", "":
		return TextMarkers, true
	}
	return Markers{}, false
}

// Render concatenates the script in order, wrapping inserted and deleted
// segments in their markers. Equal text is emitted literally.
func Render(s Script, m Markers) string {
	return RenderFunc(s, func(seg Segment) string {
		switch seg.Op {
		case Insert:
			return m.InsertStart + seg.Text + m.InsertEnd
		case Delete:
			return m.DeleteStart + seg.Text + m.DeleteEnd
		}
		return seg.Text
	})
}

// RenderFunc concatenates fn applied to every segment in order.
func RenderFunc(s Script, fn func(Segment) string) string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(fn(seg))
	}
	return b.String()
}
