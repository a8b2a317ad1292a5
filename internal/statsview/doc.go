// Package statsview serves runtime statistics over HTTP while the game
// runs. It is only built with the statsview build tag:
//
//	go build -tags statsview ./cmd/ckong
//
// Graphs are then served under /debug/statsview and the standard pprof
// pages under /debug/pprof/ on DefaultAddr unless another address is
// given. Without the tag Launch does nothing and Available reports false.
package statsview

// DefaultAddr is where the server listens when no address is given.
const DefaultAddr = "localhost:12600"
