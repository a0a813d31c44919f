//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"io"

	"github.com/sirupsen/logrus"
)

// config holds the settings collected from Options.
type config struct {
	logger       logrus.FieldLogger
	libraryPaths []string
}

// Option configures Open and NewLibrary.
type Option func(*config)

// WithLogger sends library diagnostics and routed SDL log messages to l.
// Without it the library is silent.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithLibraryPath adds an explicit SDL2 shared library to try before the
// SDLPIX_SDL2_LIBRARY environment variable and the platform defaults.
// It only affects Open, and only the first Open in a process.
func WithLibraryPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.libraryPaths = append(c.libraryPaths, path)
		}
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		c.logger = silent
	}
	return c
}
