//go:build !statsview

package statsview

import "github.com/charmbracelet/log"

// Launch only warns: the server is not compiled in.
func Launch(addr string, logger *log.Logger) (stop func()) {
	logger.Warn("statsview not compiled in; rebuild with -tags statsview")
	return func() {}
}

// Available reports whether the server is compiled in.
func Available() bool { return false }
