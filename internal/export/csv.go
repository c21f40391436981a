package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/dusk-indust/dyadcensus/internal/census"
)

var csvHeader = []string{"id", "name", "label", "layer", "value"}

// WriteCSV writes one record per row under an id,name,label,layer,value
// header.
func WriteCSV(w io.Writer, rows []census.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Label,
			strconv.Itoa(r.Layer),
			strconv.FormatInt(r.Value, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEdgelist writes a two-column edge list under the given column names.
func WriteEdgelist(w io.Writer, colNames [2]string, data [][2]int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(colNames[:]); err != nil {
		return err
	}
	for _, row := range data {
		if err := cw.Write([]string{strconv.Itoa(row[0]), strconv.Itoa(row[1])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
