package utils

import (
	"testing"

	"github.com/ericlagergren/decimal/sql/postgres"
	"github.com/go-playground/assert/v2"

	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
)

func TestFmtDecimal(t *testing.T) {
	column := func(value string) *postgres.Decimal {
		d := conv.NewDecimalWithPrecision()
		d.SetString(value)
		return &postgres.Decimal{V: d}
	}

	tests := []struct {
		name   string
		amount *postgres.Decimal
		want   string
	}{
		{
			name:   "Success case. Zero stays in plain notation",
			amount: column("0"),
			want:   "0.00000000",
		},
		{
			name:   "Success case. Fraction padded to ledger precision",
			amount: column("250.5"),
			want:   "250.50000000",
		},
		{
			name:   "Success case. Whole amount padded to ledger precision",
			amount: column("1000000000"),
			want:   "1000000000.00000000",
		},
		{
			name:   "Fail case. Nil column renders as zero",
			amount: nil,
			want:   "0",
		},
		{
			name:   "Fail case. Nil value renders as zero",
			amount: &postgres.Decimal{},
			want:   "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FmtDecimal(tt.amount))
		})
	}
}
