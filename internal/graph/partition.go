package graph

import (
	"fmt"
	"slices"
)

// Partition splits a graph's node index space into K consecutive layers of
// equal size. Endpoints holds the first node index of layers 1..K-1, so a
// partition with a single endpoint describes exactly two layers.
type Partition struct {
	netsize   int
	endpoints []int
}

// NewPartition validates netsize and endpoints against the total node count.
//
// A netsize of zero is accepted for any total as long as no endpoints are
// given: every layer is empty and no dyads exist.
func NewPartition(total, netsize int, endpoints []int) (Partition, error) {
	if netsize < 0 {
		return Partition{}, fmt.Errorf("%w: netsize %d is negative", ErrInvalidPartition, netsize)
	}
	if netsize == 0 {
		if len(endpoints) > 0 {
			return Partition{}, fmt.Errorf("%w: %d endpoints given for netsize 0", ErrInvalidPartition, len(endpoints))
		}
		return Partition{}, nil
	}

	for k, e := range endpoints {
		if k > 0 && e <= endpoints[k-1] {
			return Partition{}, fmt.Errorf("%w: endpoints not strictly increasing at position %d (%d after %d)",
				ErrInvalidPartition, k, e, endpoints[k-1])
		}
		if e < 0 || e >= total {
			return Partition{}, fmt.Errorf("%w: endpoint %d outside [0, %d)", ErrInvalidPartition, e, total)
		}
		if want := (k + 1) * netsize; e != want {
			return Partition{}, fmt.Errorf("%w: endpoint %d is %d, expected %d for netsize %d",
				ErrInvalidPartition, k, e, want, netsize)
		}
	}

	layers := len(endpoints) + 1
	if netsize*layers != total {
		return Partition{}, fmt.Errorf("%w: %d layers of size %d do not cover %d nodes",
			ErrInvalidPartition, layers, netsize, total)
	}

	return Partition{netsize: netsize, endpoints: slices.Clone(endpoints)}, nil
}

// Netsize returns the number of nodes in a single layer.
func (p Partition) Netsize() int { return p.netsize }

// Endpoints returns a copy of the layer boundaries.
func (p Partition) Endpoints() []int { return slices.Clone(p.endpoints) }

// LayerCount returns K, the number of stacked layers.
func (p Partition) LayerCount() int { return len(p.endpoints) + 1 }

// LayerRange returns the half-open node range [start, end) of layer k.
func (p Partition) LayerRange(k int) (start, end int, err error) {
	if k < 0 || k >= p.LayerCount() {
		return 0, 0, fmt.Errorf("%w: layer %d outside [0, %d)", ErrInvalidPartition, k, p.LayerCount())
	}
	if k > 0 {
		start = p.endpoints[k-1]
	}
	return start, start + p.netsize, nil
}

// LayerOf returns the layer holding node u, or -1 when u lies outside every
// layer.
func (p Partition) LayerOf(u int) int {
	if p.netsize == 0 || u < 0 {
		return -1
	}
	k := u / p.netsize
	if k >= p.LayerCount() {
		return -1
	}
	return k
}
