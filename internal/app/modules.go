package app

import (
	"github.com/scrapriq/dashboard/internal/module"
	"github.com/scrapriq/dashboard/internal/modules/scrapr"
)

// NewModules returns every module the dashboard serves. This is the single
// source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		scrapr.New(),
	}
}
