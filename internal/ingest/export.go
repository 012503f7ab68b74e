package ingest

import (
	"io"

	"github.com/go-gota/gota/dataframe"

	"github.com/vbarros/licitasis/internal/dateparse"
	"github.com/vbarros/licitasis/internal/money"
	"github.com/vbarros/licitasis/internal/store"
)

// ExportCommitments writes the commitments as CSV in the same column
// layout the import expects, so an export can be re-imported elsewhere.
func ExportCommitments(w io.Writer, commitments []store.Commitment) error {
	records := make([][]string, 0, len(commitments)+1)
	records = append(records, []string{
		"Número Empenho", "UASG", "Cliente", "Valor Total",
		"Pregão", "Classificação", "Observação", "Data Cadastro",
	})

	for _, c := range commitments {
		records = append(records, []string{
			c.Number,
			c.ClientUASG,
			c.ClientName,
			money.Format(c.DeclaredValue),
			c.Auction,
			c.Classification,
			c.Observation,
			dateparse.FormatBR(c.InsertedAt),
		})
	}

	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w)
}
