package conv_test

import (
	"testing"

	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
	"gitlab.com/smartstart-platform/buz_ledger_api/conv"
)

func TestNewDecimalWithPrecision(t *testing.T) {
	Convey("Given a fresh ledger decimal", t, func() {
		Convey("It should start from zero and quantize to 8 digits toward zero", func() {
			dec := conv.NewDecimalWithPrecision()
			So(dec.Sign(), ShouldEqual, 0)

			dec.SetString("4.931506849315")
			conv.RoundToPrecision(dec)
			So(dec.String(), ShouldEqual, "4.93150684")
		})
	})
}

func TestCloneToPrecision(t *testing.T) {
	Convey("Given an existing decimal", t, func() {
		Convey("Cloning should not share storage with the source", func() {
			src := conv.NewDecimalWithPrecision()
			src.SetString("100.5")
			clone := conv.CloneToPrecision(src)
			clone.Add(clone, conv.NewDecimalWithPrecision().SetMantScale(1, 0))

			So(src.String(), ShouldEqual, "100.5")
			So(clone.String(), ShouldEqual, "101.50000000")
		})
	})
}

func TestParseAmount(t *testing.T) {
	amount, err := conv.ParseAmount("250.12345678")
	assert.Equal(t, err, nil)
	assert.Equal(t, amount.String(), "250.12345678")

	// extra digits are truncated, not rounded up
	amount, err = conv.ParseAmount("0.999999999")
	assert.Equal(t, err, nil)
	assert.Equal(t, amount.String(), "0.99999999")

	_, err = conv.ParseAmount("not-a-number")
	assert.NotEqual(t, err, nil)
}
