package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/scrapriq/dashboard/internal/view"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Description renders the page's meta description.
func Description(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<meta name="description" content="`+templ.EscapeString(text)+`">`)
		return err
	})
}

// Base wraps page content in the HTML document shared by every page.
func Base(ctx context.Context, title, description string, content ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			view.Templ(ctx, Description(description)),
			h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
			h.Script(h.Src(htmxSrc)),
		},
		Body: []g.Node{
			h.Main(h.Class("container"), g.Group(content)),
		},
	})
}
