// Package ingest loads commitments (empenhos) and their product lines
// from portal-style CSV extracts into the database, and renders the
// matching export. Files use ';' as the delimiter and Windows-1252
// encoding, the format the procurement portal ships.
package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"

	"github.com/vbarros/licitasis/internal/logger"
	"github.com/vbarros/licitasis/internal/store"
)

type Importer struct {
	Storage *store.Storage
	Log     *logger.Logger
}

// Summary reports what one import run did.
type Summary struct {
	Commitments  int
	Items        int
	SkippedItems int
}

// ReadCSV opens and decodes one portal-style CSV into a dataframe.
func ReadCSV(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	decoded := charmap.Windows1252.NewDecoder().Reader(file)
	df := dataframe.ReadCSV(decoded, dataframe.WithDelimiter(';'), dataframe.WithLazyQuotes(true))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse %s: %w", path, df.Err)
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("file %s has no data rows", path)
	}
	return df, nil
}

// Run imports the commitments file and, when given, the items file. Item
// rows referencing an unknown product code or commitment number are
// skipped and counted, not fatal; a commitment that already exists stops
// the run with a ConflictError.
func (im *Importer) Run(ctx context.Context, commitmentsPath, itemsPath string) (Summary, error) {
	const component = "Importer"
	var sum Summary

	commitmentsDF, err := ReadCSV(commitmentsPath)
	if err != nil {
		return sum, err
	}

	var itemsByNumber map[string][]itemRow
	if itemsPath != "" {
		itemsDF, err := ReadCSV(itemsPath)
		if err != nil {
			return sum, err
		}
		itemsByNumber = make(map[string][]itemRow)
		for i := 0; i < itemsDF.Nrow(); i++ {
			row := RowToItem(itemsDF, i)
			itemsByNumber[row.CommitmentNumber] = append(itemsByNumber[row.CommitmentNumber], row)
		}
	}

	for i := 0; i < commitmentsDF.Nrow(); i++ {
		c := RowToCommitment(commitmentsDF, i)
		if c.Number == "" {
			im.Log.Warn(component, "Row %d has no commitment number, skipping", i+1)
			continue
		}

		var items []store.CommitmentItem
		for _, row := range itemsByNumber[c.Number] {
			productID, err := im.Storage.Products.IDByCode(ctx, row.ProductCode)
			if err != nil {
				im.Log.Warn(component, "Commitment %s: product code %q not in catalog, item skipped", c.Number, row.ProductCode)
				sum.SkippedItems++
				continue
			}
			item := row.Item
			item.ProductID = productID
			items = append(items, item)
		}

		if err := im.Storage.Commitments.Insert(ctx, &c, items); err != nil {
			return sum, fmt.Errorf("insert commitment %s: %w", c.Number, err)
		}
		sum.Commitments++
		sum.Items += len(items)
		im.Log.Debug(component, "Imported commitment %s with %d items", c.Number, len(items))
	}

	im.Log.Info(component, "Import finished: %d commitments, %d items, %d items skipped",
		sum.Commitments, sum.Items, sum.SkippedItems)
	return sum, nil
}
