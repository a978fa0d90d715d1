package format

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// DefaultWidth is the line width below which a block element whose content
// is all inline stays on one line.
const DefaultWidth = 80

const indentUnit = "  "

var voidElements = set("area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr")

var inlineElements = set("a", "abbr", "b", "bdi", "bdo", "br", "button", "cite", "code",
	"data", "dfn", "em", "i", "img", "input", "kbd", "label", "mark", "q", "s", "samp",
	"small", "span", "strong", "sub", "sup", "time", "u", "var", "wbr")

// Elements whose end tag may be left out.
var optionalEnd = set("html", "head", "body", "p", "li", "dt", "dd", "option",
	"optgroup", "tr", "td", "th", "thead", "tbody", "tfoot", "colgroup", "rt", "rp")

// A start tag of the key element closes an open element of these names.
var closedBy = map[string]map[string]bool{
	"li":     set("li"),
	"dt":     set("dt", "dd"),
	"dd":     set("dt", "dd"),
	"option": set("option"),
	"tr":     set("tr", "td", "th"),
	"td":     set("td", "th"),
	"th":     set("td", "th"),
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
	commentNode
	doctypeNode
)

type node struct {
	kind     nodeKind
	name     string
	open     string
	close    string
	text     string
	children []*node
}

func (n *node) inline() bool {
	switch n.kind {
	case textNode:
		return true
	case elementNode:
		if !inlineElements[n.name] {
			return false
		}
		for _, c := range n.children {
			if !c.inline() {
				return false
			}
		}
		return true
	}
	return false
}

// Markup re-indents an HTML fragment or document. Tags, attributes and text
// are kept as written; only whitespace between them changes. Content of
// <pre> and <textarea> is kept verbatim and <script>/<style> content is
// re-indented as a block. Unbalanced tags are an error.
func Markup(src string, width int) (string, error) {
	root, err := parseMarkup(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	renderChildren(&b, root.children, 0, width)
	return b.String(), nil
}

func parseMarkup(src string) (*node, error) {
	root := &node{kind: elementNode}
	stack := []*node{root}
	top := func() *node { return stack[len(stack)-1] }
	line := 1

	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		raw := string(z.Raw())
		tokenLine := line
		line += strings.Count(raw, "\n")

		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			return nil, fmt.Errorf("line %d: %w", tokenLine, z.Err())
		}

		// Inside <pre> and <textarea> everything is kept byte for byte.
		if cur := top(); cur.name == "pre" || cur.name == "textarea" {
			if tt == html.EndTagToken {
				if name, _ := z.TagName(); string(name) == cur.name {
					cur.close = raw
					stack = stack[:len(stack)-1]
					continue
				}
			}
			cur.text += raw
			continue
		}

		switch tt {
		case html.TextToken:
			top().children = append(top().children, &node{kind: textNode, text: raw})

		case html.CommentToken:
			top().children = append(top().children, &node{kind: commentNode, text: raw})

		case html.DoctypeToken:
			top().children = append(top().children, &node{kind: doctypeNode, text: raw})

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			top().children = append(top().children, &node{kind: elementNode, name: string(name), open: raw})

		case html.StartTagToken:
			nameBytes, _ := z.TagName()
			name := string(nameBytes)

			if closes, ok := closedBy[name]; ok && closes[top().name] {
				stack = stack[:len(stack)-1]
			} else if top().name == "p" && !inlineElements[name] {
				stack = stack[:len(stack)-1]
			}

			n := &node{kind: elementNode, name: name, open: raw}
			top().children = append(top().children, n)
			if !voidElements[name] {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			nameBytes, _ := z.TagName()
			name := string(nameBytes)
			if voidElements[name] {
				continue
			}

			at := -1
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].name == name {
					at = i
					break
				}
			}
			if at < 0 {
				return nil, fmt.Errorf("line %d: unexpected closing tag </%s>", tokenLine, name)
			}
			for i := len(stack) - 1; i > at; i-- {
				if !optionalEnd[stack[i].name] {
					return nil, fmt.Errorf("line %d: <%s> is not closed before </%s>", tokenLine, stack[i].name, name)
				}
			}
			stack[at].close = raw
			stack = stack[:at]
		}
	}

	for i := len(stack) - 1; i > 0; i-- {
		if !optionalEnd[stack[i].name] {
			return nil, fmt.Errorf("<%s> is never closed", stack[i].name)
		}
	}
	return root, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// inlineText renders an inline node on one line. Whitespace runs become a
// single space but are not removed, so word separation survives.
func inlineText(n *node) string {
	if n.kind == textNode {
		s := collapse(n.text)
		if s == "" {
			if n.text != "" {
				return " "
			}
			return ""
		}
		if isMarkupSpace(n.text[0]) {
			s = " " + s
		}
		if isMarkupSpace(n.text[len(n.text)-1]) {
			s += " "
		}
		return s
	}
	var b strings.Builder
	b.WriteString(n.open)
	for _, c := range n.children {
		b.WriteString(inlineText(c))
	}
	b.WriteString(n.close)
	return b.String()
}

func isMarkupSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func writeLine(b *strings.Builder, depth int, s string) {
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString(s)
	b.WriteByte('\n')
}

func renderChildren(b *strings.Builder, children []*node, depth, width int) {
	var run strings.Builder
	flush := func() {
		if s := collapse(run.String()); s != "" {
			writeLine(b, depth, s)
		}
		run.Reset()
	}

	for _, c := range children {
		if c.inline() {
			run.WriteString(inlineText(c))
			if c.name == "br" {
				flush()
			}
			continue
		}
		flush()
		renderBlock(b, c, depth, width)
	}
	flush()
}

func renderBlock(b *strings.Builder, n *node, depth, width int) {
	switch n.kind {
	case commentNode, doctypeNode:
		writeLine(b, depth, strings.TrimSpace(n.text))
		return
	}

	switch n.name {
	case "pre", "textarea":
		writeLine(b, depth, n.open+n.text+n.close)
		return
	case "script", "style":
		content := ""
		for _, c := range n.children {
			content += c.text
		}
		lines := dedent(content)
		if len(lines) == 0 {
			writeLine(b, depth, n.open+n.close)
			return
		}
		writeLine(b, depth, n.open)
		for _, l := range lines {
			if l == "" {
				b.WriteByte('\n')
				continue
			}
			writeLine(b, depth+1, l)
		}
		if n.close != "" {
			writeLine(b, depth, n.close)
		}
		return
	}

	allInline := true
	for _, c := range n.children {
		if !c.inline() {
			allInline = false
			break
		}
	}
	if allInline {
		var inner strings.Builder
		for _, c := range n.children {
			inner.WriteString(inlineText(c))
		}
		one := n.open + strings.TrimSpace(collapse(inner.String())) + n.close
		if len(indentUnit)*depth+len(one) <= width {
			writeLine(b, depth, one)
			return
		}
	}

	writeLine(b, depth, n.open)
	renderChildren(b, n.children, depth+1, width)
	if n.close != "" {
		writeLine(b, depth, n.close)
	}
}

// dedent splits content into lines, drops leading and trailing blank lines
// and removes the longest common leading whitespace.
func dedent(content string) []string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	prefix := ""
	first := true
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lead := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if first {
			prefix, first = lead, false
			continue
		}
		for !strings.HasPrefix(lead, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			out[i] = ""
			continue
		}
		out[i] = strings.TrimRight(strings.TrimPrefix(l, prefix), " \t")
	}
	return out
}
