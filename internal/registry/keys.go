package registry

import (
	"github.com/scrapriq/dashboard/internal/dashboard"
	"github.com/scrapriq/dashboard/internal/rendering"
)

// Service keys shared between the server and the modules it boots.
var (
	// BackendKey resolves the client used to reach the scraping backend.
	BackendKey = Key[dashboard.Backend]("backend.client")

	// RendererKey resolves the renderer handlers write pages and fragments with.
	RendererKey = Key[rendering.Renderer]("core.renderer")
)
