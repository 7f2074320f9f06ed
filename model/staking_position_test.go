package model

import (
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	assert "github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStakingTierTerms(t *testing.T) {
	tiers := []struct {
		tier StakingTier
		days int
		apy  string
	}{
		{StakingTierBasic, 30, "5.00"},
		{StakingTierPremium, 90, "10.00"},
		{StakingTierVip, 180, "15.00"},
		{StakingTierGovernance, 365, "20.00"},
	}
	for _, tt := range tiers {
		assert.Equal(t, tt.tier.IsValid(), true)
		assert.Equal(t, tt.tier.DurationDays(), tt.days)
		assert.Equal(t, tt.tier.APYPercent().String(), tt.apy)
	}
	assert.Equal(t, StakingTier("platinum").IsValid(), false)
	assert.Equal(t, StakingTier("platinum").DurationDays(), 0)
}

func TestStakingTierExpectedReward(t *testing.T) {
	Convey("Expected reward is amount * apy/100 * days/365", t, func() {
		amount := decimal.New(200, 0)
		reward := StakingTierPremium.ExpectedReward(amount)
		So(reward.String(), ShouldEqual, "4.93150684")

		Convey("Governance runs a full year so the reward is exactly apy", func() {
			reward := StakingTierGovernance.ExpectedReward(decimal.New(1000, 0))
			So(reward.String(), ShouldEqual, "200.00000000")
		})
		Convey("The input amount is not mutated", func() {
			So(amount.String(), ShouldEqual, "200")
		})
	})
}

func TestStakingPositionLifecycle(t *testing.T) {
	Convey("A new position is active and matures at start plus tier duration", t, func() {
		start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		position := NewStakingPosition(42, decimal.New(200, 0), StakingTierPremium, start, "ref-1")

		So(position.Status, ShouldEqual, StakingStatusActive)
		So(position.EndDate.Equal(start.AddDate(0, 0, 90)), ShouldBeTrue)
		So(position.ExpectedReward.V.String(), ShouldEqual, "4.93150684")

		Convey("It is not matured one second before the end date", func() {
			So(position.IsMatured(position.EndDate.Add(-time.Second)), ShouldBeFalse)
		})
		Convey("It is matured exactly at the end date", func() {
			So(position.IsMatured(position.EndDate), ShouldBeTrue)
		})
	})
}
