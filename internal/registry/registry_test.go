package registry

import (
	"testing"

	"github.com/scrapriq/dashboard/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	cfg := &config.Config{BackendURL: "http://backend"}
	reg := New(cfg)
	assert.Equal(t, "http://backend", reg.Config().GetBackendURL())

	greeting := Key[string]("test.greeting")

	_, ok := Get(reg, greeting)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGet(reg, greeting) })

	Set(reg, greeting, "hello")
	got, ok := Get(reg, greeting)
	assert.True(t, ok)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "hello", MustGet(reg, greeting))

	// Same name, different type: not a match.
	_, ok = Get(reg, Key[int]("test.greeting"))
	assert.False(t, ok)
}
