package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dusk-indust/dyadcensus/internal/census"
)

// WriteTable writes rows as aligned text columns for terminals.
func WriteTable(w io.Writer, rows []census.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLABEL\tLAYER\tVALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", r.ID, r.Name, r.Label, r.Layer, r.Value)
	}
	return tw.Flush()
}
