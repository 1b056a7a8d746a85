package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"stabilitylog/internal/views/components"
)

const stylesheet = `body{margin:0;font-family:system-ui,sans-serif;background:#f9fafb;color:#1f2937}
.shell{display:flex;min-height:100vh}
.sidebar{width:14rem;background:#1e293b}
.sidebar ul{list-style:none;margin:0;padding:1rem 0}
.sidebar a{display:block;padding:.6rem 1.25rem;color:#cbd5e1;text-decoration:none}
.sidebar a[data-state=active]{background:#2563eb;color:#fff}
main{flex:1;padding:2rem;overflow:auto}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid #e5e7eb;padding:.35rem .5rem;text-align:left;font-size:.9rem}
.notice{background:#fef3c7;border:1px solid #f59e0b;padding:.75rem 1rem;margin-bottom:1rem}
dialog[open]{position:static;display:block;border:1px solid #cbd5e1;margin:1rem 0;width:100%}`

// Layout renders the HTML document with the navigation sidebar and page content.
func Layout(title string, sidebar, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := components.NewPrinter(w)
		p.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.Rawf(`<title>%s</title>`, components.Esc(title))
		p.Rawf(`<style>%s</style>`, stylesheet)
		p.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		p.Raw(`</head><body hx-boost="true"><div class="shell">`)
		p.Component(ctx, sidebar)
		p.Raw(`<main>`)
		p.Component(ctx, content)
		p.Raw(`</main></div></body></html>`)
		return p.Err()
	})
}
