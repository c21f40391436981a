//go:build !cgo

package main

import (
	"fmt"

	"github.com/dusk-indust/dyadcensus/internal/graph"
)

func openStore(path string) (graph.Store, error) {
	if path != "" {
		return nil, fmt.Errorf("store path %q needs a cgo build (KuzuDB)", path)
	}
	return graph.NewMemStore(), nil
}
