package models

// Snapshot is the content of all three channels at one instant.
type Snapshot struct {
	Markup string `json:"markup" yaml:"markup"`
	Style  string `json:"style" yaml:"style"`
	Script string `json:"script" yaml:"script"`
}

// Get returns the content of one channel. Unknown channels read as empty.
func (s Snapshot) Get(c Channel) string {
	switch c {
	case Markup:
		return s.Markup
	case Style:
		return s.Style
	case Script:
		return s.Script
	}
	return ""
}

// With returns a copy of s with channel c replaced by text.
func (s Snapshot) With(c Channel, text string) Snapshot {
	switch c {
	case Markup:
		s.Markup = text
	case Style:
		s.Style = text
	case Script:
		s.Script = text
	}
	return s
}
