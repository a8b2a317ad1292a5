//go:build statsview

package statsview

import (
	"github.com/charmbracelet/log"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// refreshMs is how often the charts sample the runtime.
const refreshMs = 1000

// Launch serves the charts on addr from a background goroutine and returns
// a function that shuts the server down. An empty addr uses DefaultAddr.
func Launch(addr string, logger *log.Logger) (stop func()) {
	if addr == "" {
		addr = DefaultAddr
	}
	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(refreshMs))
	mgr := statsview.New()
	go mgr.Start()

	logger.Info("stats server listening", "charts", "http://"+addr+"/debug/statsview", "pprof", "http://"+addr+"/debug/pprof/")
	return mgr.Stop
}

// Available reports whether the server is compiled in.
func Available() bool { return true }
