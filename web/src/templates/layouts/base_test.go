package layouts

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Dashboard - ScraprIQ", CalculateTitle("Dashboard"))
	assert.Equal(t, "ScraprIQ", CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var buf bytes.Buffer
	node := Base(context.Background(), "Dashboard", `Leads & "more"`, h.P(g.Text("content")))
	require.NoError(t, node.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Dashboard - ScraprIQ</title>")
	assert.Contains(t, out, `<meta name="description" content="Leads &amp; &#34;more&#34;">`)
	assert.Contains(t, out, "htmx.org")
	assert.Contains(t, out, `<main class="container"><p>content</p></main>`)
}
