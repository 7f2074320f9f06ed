package utils

import (
	"fmt"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
)

// Fmt renders a decimal amount for JSON output at ledger precision.
// The f verb keeps every value, zero included, in plain fixed point
// notation.
func Fmt(amount *decimal.Big) string {
	if amount == nil {
		return "0"
	}
	return fmt.Sprintf("%f", conv.CloneToPrecision(amount))
}

// FmtDecimal renders a stored decimal column for JSON output
func FmtDecimal(amount *postgres.Decimal) string {
	if amount == nil || amount.V == nil {
		return "0"
	}
	return Fmt(amount.V)
}
