//go:build !darwin || !cgo

package ioreg

import (
	"fmt"
	"runtime"

	"github.com/luxtap/luxtap/internal/als"
)

// Registry is the null registry for platforms without an IOKit service
// registry. Every query fails.
type Registry struct{}

// New returns the null registry.
func New() *Registry {
	return &Registry{}
}

// Services always fails: there is no hardware service registry to query.
func (r *Registry) Services(class string) (als.Cursor, error) {
	return nil, fmt.Errorf("hardware service registry not available on %s/%s", runtime.GOOS, runtime.GOARCH)
}
