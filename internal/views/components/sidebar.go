package components

import (
	"context"
	"io"

	templpkg "github.com/a-h/templ"

	"stabilitylog/internal/views/tabs"
)

func linkState(section, active string) string {
	if section == active {
		return "active"
	}
	return "inactive"
}

// Sidebar renders the tab navigation with active marking the current tab.
func Sidebar(active string) templpkg.Component {
	return templpkg.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := NewPrinter(w)
		p.Raw(`<nav class="sidebar" aria-label="Sections"><ul>`)
		for _, tab := range tabs.All() {
			p.Rawf(`<li><a href="/?tab=%s" data-nav-section="%s" data-state="%s">%s</a></li>`,
				Esc(tab.Key), Esc(tab.Key), linkState(tab.Key, active), Esc(tab.Label))
		}
		p.Raw(`</ul></nav>`)
		return p.Err()
	})
}

// Notice renders a dismissible banner; an empty message renders nothing.
func Notice(message string) templpkg.Component {
	return templpkg.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		p := NewPrinter(w)
		p.Rawf(`<div class="notice" role="alert">%s</div>`, Esc(message))
		return p.Err()
	})
}

// Datalist renders an autocomplete list with the given element id.
func Datalist(id string, options []string) templpkg.Component {
	return templpkg.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := NewPrinter(w)
		p.Rawf(`<datalist id="%s">`, Esc(id))
		for _, option := range options {
			p.Rawf(`<option value="%s"></option>`, Esc(option))
		}
		p.Raw(`</datalist>`)
		return p.Err()
	})
}
