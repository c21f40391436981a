package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dusk-indust/dyadcensus/internal/census"
	"github.com/dusk-indust/dyadcensus/internal/graph"
)

// ResultExport is the top-level JSON export structure.
type ResultExport struct {
	Graph      graph.GraphInfo `json:"graph"`
	Family     string          `json:"family"`
	ExportedAt string          `json:"exportedAt"`
	Rows       []census.Row    `json:"rows"`
}

// NewResultExport stamps rows with graph metadata and the export time.
func NewResultExport(info graph.GraphInfo, family string, rows []census.Row) *ResultExport {
	if rows == nil {
		rows = []census.Row{}
	}
	return &ResultExport{
		Graph:      info,
		Family:     family,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:       rows,
	}
}

// WriteJSON writes the export as indented JSON followed by a newline.
func WriteJSON(w io.Writer, export *ResultExport) error {
	out, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
