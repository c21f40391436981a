package host

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/dyadcensus/internal/census"
	"github.com/dusk-indust/dyadcensus/internal/graph"
)

func intPtr(n int) *int { return &n }

func TestNewGraph_TranslatesLabels(t *testing.T) {
	g, err := NewGraph(4, []int{1, 4}, []int{2, 3}, intPtr(2), []int{2})
	require.NoError(t, err)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(3, 2))
	assert.Equal(t, 2, g.Partition().LayerCount())
}

func TestNewGraph_Errors(t *testing.T) {
	_, err := NewGraph(3, []int{0}, []int{1}, nil, nil)
	assert.ErrorIs(t, err, graph.ErrInvalidIndex)

	_, err = NewGraph(3, []int{1}, []int{0}, nil, nil)
	assert.ErrorIs(t, err, graph.ErrInvalidIndex)

	_, err = NewGraph(3, []int{4}, []int{1}, nil, nil)
	assert.ErrorIs(t, err, graph.ErrInvalidIndex)

	_, err = NewGraph(3, []int{1, 2}, []int{1}, nil, nil)
	assert.ErrorIs(t, err, graph.ErrInvalidIndex)

	_, err = NewGraph(4, nil, nil, nil, []int{2})
	assert.ErrorIs(t, err, graph.ErrInvalidPartition)

	_, err = NewGraph(5, nil, nil, intPtr(2), []int{2})
	assert.ErrorIs(t, err, graph.ErrInvalidPartition)
}

func TestFromDocument(t *testing.T) {
	doc := &graph.Document{
		NodeCount: 4,
		Netsize:   intPtr(2),
		Endpoints: []int{2},
		Edges:     []graph.EdgePair{{Source: 1, Target: 2}, {Source: 4, Target: 3}},
	}
	g, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 2))
}

func TestAsGraph(t *testing.T) {
	_, err := AsGraph("not a graph")
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)

	_, err = AsGraph(nil)
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)

	_, err = AsGraph(&graph.Graph{})
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)

	var nilGraph *graph.Graph
	_, err = AsGraph(nilGraph)
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)

	g, err := NewGraph(2, nil, nil, nil, nil)
	require.NoError(t, err)
	got, err := AsGraph(g)
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestCountCensus(t *testing.T) {
	g, err := NewGraph(4, []int{1}, []int{2}, intPtr(2), []int{2})
	require.NoError(t, err)

	frame, err := CountCensus(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 10, frame.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, frame.ID)
	assert.Equal(t, "census04", frame.Name[3])
	assert.Equal(t, "(04) Partial false negative (assym)", frame.Label[3])
	assert.Equal(t, int64(1), frame.Value[3])
	for i, layer := range frame.Layer {
		assert.Equal(t, 1, layer, "row %d", i)
	}
}

func TestCountRecipErrors(t *testing.T) {
	// Layer 0 holds 1<->2; layer 1 keeps only 4->3.
	g, err := NewGraph(4, []int{1, 2, 4}, []int{2, 1, 3}, intPtr(2), []int{2})
	require.NoError(t, err)

	frame, err := CountRecipErrors(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 5, frame.Len())
	assert.Equal(t, "partially_false_recip_omission", frame.Name[0])
	assert.Equal(t, []int64{1, 0, 0, 0, 0}, frame.Value)
}

func TestCountAll(t *testing.T) {
	g, err := NewGraph(6, []int{1, 4}, []int{2, 3}, intPtr(2), []int{2, 4})
	require.NoError(t, err)

	frame, err := CountAll(context.Background(), g, census.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 30, frame.Len())

	// Classifier-major: both layers of mixed_recip come before census01.
	assert.Equal(t, "mixed_recip", frame.Name[8])
	assert.Equal(t, []int{1, 2}, frame.Layer[8:10])
	assert.Equal(t, []int64{1, 0}, frame.Value[8:10])
	assert.Equal(t, "census01", frame.Name[10])
}

func TestCount_BadHandle(t *testing.T) {
	_, err := CountCensus(context.Background(), 42)
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)
	_, err = CountRecipErrors(context.Background(), nil)
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)
	_, err = CountAll(context.Background(), &graph.Graph{})
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)
}

func TestToEdgelist(t *testing.T) {
	g, err := NewGraph(3, []int{1, 3, 1}, []int{2, 1, 2}, nil, nil)
	require.NoError(t, err)

	m, err := ToEdgelist(g)
	require.NoError(t, err)
	assert.Equal(t, [2]string{"source", "target"}, m.ColNames)
	assert.Equal(t, [][2]int{{1, 2}, {3, 1}, {1, 2}}, m.Data)

	_, err = ToEdgelist("x")
	assert.ErrorIs(t, err, graph.ErrTypeMismatch)
}

func TestPrintSummary(t *testing.T) {
	g, err := NewGraph(4, []int{1}, []int{2}, intPtr(2), []int{2})
	require.NoError(t, err)

	var sb strings.Builder
	PrintSummary(&sb, g, false)
	assert.Equal(t, "A graph with 2 networks of size 2.\n", sb.String())

	sb.Reset()
	PrintSummary(&sb, g, true)
	assert.Contains(t, sb.String(), "  1 -> 2")

	sb.Reset()
	PrintSummary(&sb, "nope", false)
	assert.Contains(t, sb.String(), graph.ErrTypeMismatch.Error())
}

func TestFrameOf_Empty(t *testing.T) {
	f := FrameOf(nil)
	assert.Zero(t, f.Len())
	assert.NotNil(t, f.Name)
}

func TestNewGraph_LabelAboveNodeCount(t *testing.T) {
	_, err := NewGraph(4, []int{5}, []int{1}, nil, nil)
	require.ErrorIs(t, err, graph.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "source label 5 outside [1, 4]")

	_, err = NewGraph(4, []int{1}, []int{5}, nil, nil)
	require.ErrorIs(t, err, graph.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "target label 5 outside [1, 4]")
}

func TestCountClassifiers(t *testing.T) {
	g, err := NewGraph(4, []int{1}, []int{2}, intPtr(2), []int{2})
	require.NoError(t, err)

	frame, err := CountClassifiers(context.Background(), g, []string{"census04", "census01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"census04", "census01"}, frame.Name)
	assert.Equal(t, []int64{1, 0}, frame.Value)

	_, err = CountClassifiers(context.Background(), g, []string{"census11"})
	assert.ErrorIs(t, err, census.ErrUnknownClassifier)
}

func TestFrame_Rows(t *testing.T) {
	rows := []census.Row{
		{ID: 0, Name: "census01", Label: "(01) Accurate null", Layer: 1, Value: 2},
		{ID: 1, Name: "census01", Label: "(01) Accurate null", Layer: 2, Value: 0},
	}
	assert.Equal(t, rows, FrameOf(rows).Rows())
	assert.Empty(t, Frame{}.Rows())
}
