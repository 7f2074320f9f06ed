package conv

import (
	"errors"

	"github.com/ericlagergren/decimal"
)

// Precision is the number of fractional digits every ledger amount is
// quantized to before it is stored or compared.
const Precision = 8

var zeroRounded decimal.Big

func init() {
	zeroRounded = decimal.Big{}
	zeroRounded.Context = decimal.Context128
	zeroRounded.Context.RoundingMode = decimal.ToZero
	zeroRounded.Quantize(Precision)
}

// NewDecimalWithPrecision returns a zero decimal with the ledger context
// (128 bit, round toward zero, 8 fractional digits)
func NewDecimalWithPrecision() *decimal.Big {
	z := zeroRounded
	return &z
}

func CloneToPrecision(amount *decimal.Big) *decimal.Big {
	dec := &decimal.Big{}
	dec.Context = decimal.Context128
	dec.Context.RoundingMode = decimal.ToZero
	dec.Copy(amount)
	dec.Quantize(Precision)
	return dec
}

func RoundToPrecision(amount *decimal.Big) *decimal.Big {
	amount.Context = decimal.Context128
	amount.Context.RoundingMode = decimal.ToZero
	amount.Quantize(Precision)

	return amount
}

// ParseAmount converts user provided input into a ledger decimal.
// Rejects unparsable input and NaN.
func ParseAmount(amount string) (*decimal.Big, error) {
	dec := NewDecimalWithPrecision()
	if _, ok := dec.SetString(amount); !ok {
		return nil, errors.New("invalid amount")
	}
	if dec.IsNaN(0) {
		return nil, errors.New("invalid amount")
	}
	return RoundToPrecision(dec), nil
}
