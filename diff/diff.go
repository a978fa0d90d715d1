// Package diff computes character-level edit scripts between two texts and
// renders them for display.
package diff

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a segment.
type Op int

const (
	Delete Op = -1
	Equal  Op = 0
	Insert Op = 1
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	}
	return "equal"
}

// Segment is one run of text that is kept, inserted or deleted.
type Segment struct {
	Op   Op     `json:"op"`
	Text string `json:"text"`
}

// Script is the ordered edit script turning one text into another.
type Script []Segment

// Diff computes the edit script from oldText to newText.
//
// The alignment is a minimal character-level diff followed by a semantic
// cleanup that merges small edits and slides edit boundaries onto word and
// whitespace boundaries. No timeout is applied, so the result depends only
// on the inputs.
//
// When either text is not valid UTF-8 the alignment runs over bytes instead
// of characters, so Old and New still reproduce the inputs exactly.
func Diff(oldText, newText string) Script {
	if oldText == newText {
		return Script{{Op: Equal, Text: oldText}}
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	bytewise := !utf8.ValidString(oldText) || !utf8.ValidString(newText)
	var diffs []diffmatchpatch.Diff
	if bytewise {
		diffs = dmp.DiffMainRunes(byteRunes(oldText), byteRunes(newText), false)
	} else {
		diffs = dmp.DiffMain(oldText, newText, false)
	}
	diffs = dmp.DiffCleanupSemantic(diffs)

	script := make(Script, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		text := d.Text
		if bytewise {
			text = runeBytes(text)
		}
		script = append(script, Segment{Op: Op(d.Type), Text: text})
	}
	return script
}

// byteRunes maps every byte of s to the rune with the same value.
func byteRunes(s string) []rune {
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		r[i] = rune(s[i])
	}
	return r
}

// runeBytes reverses byteRunes.
func runeBytes(s string) string {
	runes := []rune(s)
	b := make([]byte, len(runes))
	for i, r := range runes {
		b[i] = byte(r)
	}
	return string(b)
}

// Old reconstructs the original text from the equal and deleted segments.
func (s Script) Old() string {
	var b strings.Builder
	for _, seg := range s {
		if seg.Op != Insert {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// New reconstructs the changed text from the equal and inserted segments.
func (s Script) New() string {
	var b strings.Builder
	for _, seg := range s {
		if seg.Op != Delete {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Identical reports whether the script contains no edits.
func (s Script) Identical() bool {
	for _, seg := range s {
		if seg.Op != Equal {
			return false
		}
	}
	return true
}

// Stats summarizes a script.
type Stats struct {
	Inserted  int `json:"inserted"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
	Edits     int `json:"edits"`
}

// Stats counts runes per operation and the number of edit segments.
func (s Script) Stats() Stats {
	var st Stats
	for _, seg := range s {
		n := utf8.RuneCountInString(seg.Text)
		switch seg.Op {
		case Insert:
			st.Inserted += n
			st.Edits++
		case Delete:
			st.Deleted += n
			st.Edits++
		default:
			st.Unchanged += n
		}
	}
	return st
}
