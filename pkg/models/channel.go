package models

import (
	"strings"

	"github.com/grovetools/playground/errors"
)

// Channel identifies one of the three source buffers.
type Channel string

const (
	Markup Channel = "markup"
	Style  Channel = "style"
	Script Channel = "script"
)

// Language is the formatter hint for a channel's content.
type Language string

const (
	LangHTML Language = "html"
	LangCSS  Language = "css"
	LangJS   Language = "js"
)

// Channels lists every channel in display order.
var Channels = []Channel{Markup, Style, Script}

// Key returns the durable storage key holding the channel's latest content.
func (c Channel) Key() string {
	switch c {
	case Markup:
		return "htmlCode"
	case Style:
		return "cssCode"
	case Script:
		return "jsCode"
	}
	return ""
}

// Language returns the formatter hint for the channel.
func (c Channel) Language() Language {
	switch c {
	case Markup:
		return LangHTML
	case Style:
		return LangCSS
	case Script:
		return LangJS
	}
	return ""
}

// Label is the short upper-case name used in diff reports and errors.
func (c Channel) Label() string {
	return strings.ToUpper(string(c.Language()))
}

// Valid reports whether c is one of the three known channels.
func (c Channel) Valid() bool {
	return c.Key() != ""
}

// ParseChannel accepts a channel name or one of its aliases
// (html/css/js, the file extensions, or the storage key).
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markup", "html", "htm", "htmlcode":
		return Markup, nil
	case "style", "css", "csscode":
		return Style, nil
	case "script", "js", "javascript", "jscode":
		return Script, nil
	}
	return "", errors.UnknownChannel(name)
}
