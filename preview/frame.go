package preview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Device is a named preview width.
type Device struct {
	Name  string `yaml:"name" json:"name"`
	Width string `yaml:"width" json:"width"`
}

// DefaultDevices are the widths offered when configuration adds none.
var DefaultDevices = map[string]string{
	"desktop": "100%",
	"tablet":  "768px",
	"mobile":  "375px",
}

// Devices resolves device names to widths, falling back to DefaultDevices.
type Devices map[string]string

// Lookup returns the device called name. An empty name selects desktop.
func (d Devices) Lookup(name string) (Device, error) {
	if name == "" {
		name = "desktop"
	}
	name = strings.ToLower(name)
	if w, ok := d[name]; ok {
		return Device{Name: name, Width: w}, nil
	}
	if w, ok := DefaultDevices[name]; ok {
		return Device{Name: name, Width: w}, nil
	}
	return Device{}, fmt.Errorf("unknown device %q (available: %s)", name, strings.Join(d.Names(), ", "))
}

// Names lists every known device name, sorted.
func (d Devices) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, src := range []map[string]string{DefaultDevices, d} {
		for n := range src {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

const hostStyle = "html,body{margin:0;height:100%;background:#f4f4f4}" +
	"iframe{display:block;margin:0 auto;height:100%;border:0;background:#fff}"

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// Frame renders a host page that shows doc in a sandboxed iframe sized for
// device. The sandbox allows scripts but not same-origin access, so the
// previewed code cannot reach the host page or its storage.
func Frame(w io.Writer, doc Document, device Device) error {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := element(atom.Html)
	root.AppendChild(page)

	head := element(atom.Head)
	page.AppendChild(head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: "Preview (" + device.Name + ")"})
	head.AppendChild(title)
	style := element(atom.Style)
	style.AppendChild(&html.Node{Type: html.TextNode, Data: hostStyle})
	head.AppendChild(style)

	body := element(atom.Body)
	page.AppendChild(body)
	body.AppendChild(element(atom.Iframe,
		"title", "preview",
		"sandbox", "allow-scripts",
		"style", "width:"+device.Width,
		"srcdoc", string(doc),
	))

	return html.Render(w, root)
}
