//go:build cgo

package main

import "github.com/dusk-indust/dyadcensus/internal/graph"

// openStore opens a KuzuDB store at path, or an in-memory store when path is
// empty.
func openStore(path string) (graph.Store, error) {
	if path == "" {
		return graph.NewMemStore(), nil
	}
	return graph.NewKuzuFileStore(path)
}
