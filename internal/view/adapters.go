package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// Templ embeds a templ.Component in a gomponents tree. Gomponents does not
// pass a context when rendering, so the caller supplies the one templ sees.
func Templ(ctx context.Context, component templ.Component) gomponents.Node {
	return gomponents.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}
