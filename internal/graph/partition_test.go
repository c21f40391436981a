package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartition(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		netsize    int
		endpoints  []int
		wantLayers int
		wantErr    bool
	}{
		{name: "single layer", total: 5, netsize: 5, wantLayers: 1},
		{name: "single endpoint gives two layers", total: 4, netsize: 2, endpoints: []int{2}, wantLayers: 2},
		{name: "three layers", total: 9, netsize: 3, endpoints: []int{3, 6}, wantLayers: 3},
		{name: "zero netsize", total: 7, netsize: 0, wantLayers: 1},
		{name: "empty graph", total: 0, netsize: 0, wantLayers: 1},
		{name: "negative netsize", total: 4, netsize: -1, wantErr: true},
		{name: "zero netsize with endpoints", total: 4, netsize: 0, endpoints: []int{2}, wantErr: true},
		{name: "uncovered tail", total: 5, netsize: 2, endpoints: []int{2}, wantErr: true},
		{name: "endpoint off the grid", total: 6, netsize: 3, endpoints: []int{2}, wantErr: true},
		{name: "endpoints not increasing", total: 9, netsize: 3, endpoints: []int{6, 3}, wantErr: true},
		{name: "endpoint past total", total: 4, netsize: 2, endpoints: []int{4}, wantErr: true},
		{name: "netsize larger than total", total: 3, netsize: 4, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPartition(tt.total, tt.netsize, tt.endpoints)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPartition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLayers, p.LayerCount())
			assert.Equal(t, tt.netsize, p.Netsize())
		})
	}
}

func TestPartition_LayerRange(t *testing.T) {
	p, err := NewPartition(9, 3, []int{3, 6})
	require.NoError(t, err)

	for k, want := range [][2]int{{0, 3}, {3, 6}, {6, 9}} {
		start, end, err := p.LayerRange(k)
		require.NoError(t, err)
		assert.Equal(t, want, [2]int{start, end}, "layer %d", k)
	}

	_, _, err = p.LayerRange(3)
	assert.ErrorIs(t, err, ErrInvalidPartition)
	_, _, err = p.LayerRange(-1)
	assert.ErrorIs(t, err, ErrInvalidPartition)
}

func TestPartition_LayerOf(t *testing.T) {
	p, err := NewPartition(6, 2, []int{2, 4})
	require.NoError(t, err)

	assert.Equal(t, 0, p.LayerOf(0))
	assert.Equal(t, 0, p.LayerOf(1))
	assert.Equal(t, 1, p.LayerOf(2))
	assert.Equal(t, 2, p.LayerOf(5))
	assert.Equal(t, -1, p.LayerOf(6))
	assert.Equal(t, -1, p.LayerOf(-1))

	empty, err := NewPartition(3, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, empty.LayerOf(0))
}

func TestPartition_EndpointsCopy(t *testing.T) {
	p, err := NewPartition(4, 2, []int{2})
	require.NoError(t, err)
	eps := p.Endpoints()
	eps[0] = 3
	assert.Equal(t, []int{2}, p.Endpoints())
}
