package configs

import (
	"errors"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

var ErrValueNotFound = errors.New("config value not found")

// Loader with no files, every lookup reports ErrValueNotFound.
func (Module) Loader() Loader {
	return NewLoader(nil, "")
}
