package reply

import (
	"fmt"
	"strings"
)

// Accent color for embeds, as 0xRRGGBB.
const EmbedColor = 0x2fb6f5

// A reply ready to send. Exactly one of Content or Embed is set.
type Message struct {
	Content string
	Embed   *Embed
}

type Embed struct {
	Title string
	URL   string
	Color int
	// optional
	Author *Author
	// small image next to the title; empty means none
	Thumbnail string
	// large image below the fields; empty means none
	Image  string
	Fields []Field
}

type Author struct {
	Name    string
	URL     string
	IconURL string
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Plain-text rendering, used by the command line tool.
func (m *Message) Text() string {
	if m.Embed == nil {
		return m.Content
	}
	e := m.Embed
	var b strings.Builder
	if m.Content != "" {
		fmt.Fprintln(&b, m.Content)
	}
	if e.Author != nil {
		fmt.Fprintf(&b, "%s <%s>\n", e.Author.Name, e.Author.URL)
	}
	fmt.Fprintln(&b, e.Title)
	if e.URL != "" {
		fmt.Fprintln(&b, e.URL)
	}
	for _, f := range e.Fields {
		if strings.Contains(f.Value, "\n") {
			fmt.Fprintf(&b, "%s:\n  %s\n", f.Name, strings.ReplaceAll(f.Value, "\n", "\n  "))
		} else {
			fmt.Fprintf(&b, "%s: %s\n", f.Name, f.Value)
		}
	}
	if e.Thumbnail != "" {
		fmt.Fprintf(&b, "thumbnail: %s\n", e.Thumbnail)
	}
	if e.Image != "" {
		fmt.Fprintf(&b, "image: %s\n", e.Image)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
