package format

import (
	"strings"

	"github.com/grovetools/playground/pkg/models"
)

// keepMark turns an ordinary comment into one esbuild treats as a legal
// comment. It is inserted after the comment opener and removed again once
// the reprinted code comes back.
const keepMark = "!keep:"

// regexKeywords may directly precede a regular expression literal.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

// commentSpans returns the [start, end) byte range of every comment in src.
// Strings, template literals and regular expression literals are skipped so
// comment openers inside them are not counted.
func commentSpans(src string, lang models.Language) [][2]int {
	var spans [][2]int
	script := lang == models.LangJS
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				end = len(src)
			} else {
				end += i + 4
			}
			spans = append(spans, [2]int{i, end})
			i = end
		case script && c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src)
			} else {
				end += i
			}
			spans = append(spans, [2]int{i, end})
			i = end
		case c == '"' || c == '\'' || (script && c == '`'):
			i = skipQuoted(src, i)
		case script && c == '/' && regexAllowed(src, i):
			i = skipRegex(src, i)
		default:
			i++
		}
	}
	return spans
}

func skipQuoted(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		case '\n':
			if quote != '`' {
				return j + 1
			}
		}
	}
	return len(src)
}

// regexAllowed reports whether a slash at i starts a regular expression
// rather than a division, judging by the token before it.
func regexAllowed(src string, i int) bool {
	j := i - 1
	for j >= 0 && isSpace(src[j]) {
		j--
	}
	if j < 0 {
		return true
	}
	if strings.IndexByte("(,=:[!&|?{};+-*%<>~^", src[j]) >= 0 {
		return true
	}
	k := j
	for k >= 0 && isIdent(src[k]) {
		k--
	}
	return k < j && regexKeywords[src[k+1:j+1]]
}

func skipRegex(src string, i int) int {
	inClass := false
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return j + 1
			}
		case '\n':
			return i + 1
		}
	}
	return i + 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isIdent(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// markComments inserts keepMark into every comment that is not already a
// legal comment.
func markComments(src string, spans [][2]int) string {
	var b strings.Builder
	b.Grow(len(src) + len(spans)*len(keepMark))
	last := 0
	for _, sp := range spans {
		comment := src[sp[0]:sp[1]]
		b.WriteString(src[last:sp[0]])
		if len(comment) > 2 && comment[2] == '!' {
			b.WriteString(comment)
		} else {
			b.WriteString(comment[:2])
			b.WriteString(keepMark)
			b.WriteString(comment[2:])
		}
		last = sp[1]
	}
	b.WriteString(src[last:])
	return b.String()
}

func unmarkComments(src string) string {
	src = strings.ReplaceAll(src, "/*"+keepMark, "/*")
	return strings.ReplaceAll(src, "//"+keepMark, "//")
}
