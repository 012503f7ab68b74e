package ingest

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/shopspring/decimal"

	"github.com/vbarros/licitasis/internal/money"
	"github.com/vbarros/licitasis/internal/store"
)

// Column helpers in the style of the portal extracts: a missing column
// yields the zero value instead of failing the whole file.

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

func getStr(col string, rowIdx int, df *dataframe.DataFrame) string {
	if df == nil {
		return ""
	}
	if containsString(df.Names(), col) {
		return df.Col(col).Elem(rowIdx).String()
	}
	return ""
}

func getInt64(col string, rowIdx int, df *dataframe.DataFrame) int64 {
	if df == nil {
		return 0
	}
	if containsString(df.Names(), col) {
		val, err := df.Col(col).Elem(rowIdx).Int()
		if err != nil {
			return 0
		}
		return int64(val)
	}
	return 0
}

// RowToCommitment maps one row of the commitments CSV onto the store
// model. Monetary columns arrive in the Brazilian comma-decimal form.
func RowToCommitment(df dataframe.DataFrame, rowIdx int) store.Commitment {
	return store.Commitment{
		Number:         getStr("Número Empenho", rowIdx, &df),
		ClientUASG:     getStr("UASG", rowIdx, &df),
		ClientName:     getStr("Cliente", rowIdx, &df),
		DeclaredValue:  money.ParseOrZero(getStr("Valor Total", rowIdx, &df)),
		Auction:        getStr("Pregão", rowIdx, &df),
		Classification: getStr("Classificação", rowIdx, &df),
		Observation:    getStr("Observação", rowIdx, &df),
	}
}

// itemRow is one row of the items CSV before the product code has been
// resolved against the catalog.
type itemRow struct {
	CommitmentNumber string
	ProductCode      string
	Item             store.CommitmentItem
}

// RowToItem maps one row of the commitment-items CSV. The line total is
// recomputed from quantity and unit price rather than trusted from the
// file.
func RowToItem(df dataframe.DataFrame, rowIdx int) itemRow {
	qty := getInt64("Quantidade", rowIdx, &df)
	unit := money.ParseOrZero(getStr("Valor Unitário", rowIdx, &df))

	return itemRow{
		CommitmentNumber: getStr("Número Empenho", rowIdx, &df),
		ProductCode:      getStr("Código Produto", rowIdx, &df),
		Item: store.CommitmentItem{
			Quantity:    qty,
			UnitPrice:   unit,
			Total:       money.Round2(unit.Mul(decimal.NewFromInt(qty))),
			Description: getStr("Descrição", rowIdx, &df),
		},
	}
}
