// Package finance implements the goal-planning math: the monthly SIP needed to
// reach an inflation-adjusted target, the fixed-strategy projections derived
// from it, and the month-by-month growth of a contribution plan.
//
// The functions are pure and perform no validation of their inputs; callers
// are expected to reject negative amounts or malformed values beforehand.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// annuityEpsilon bounds the annuity factor away from zero.
const annuityEpsilon = 1e-9

// Strategy names a fixed return-rate assumption.
type Strategy string

const (
	StrategyConservative Strategy = "conservative"
	StrategyModerate     Strategy = "moderate"
	StrategyAggressive   Strategy = "aggressive"
)

// StrategyRate pairs a strategy with its annual return rate.
type StrategyRate struct {
	Strategy Strategy
	Rate     float64
}

// Strategies lists the fixed strategies in the order projections are emitted.
var Strategies = []StrategyRate{
	{Strategy: StrategyConservative, Rate: 0.08},
	{Strategy: StrategyModerate, Rate: 0.12},
	{Strategy: StrategyAggressive, Rate: 0.15},
}

// Months converts a horizon in years to whole months, rounding to the nearest
// month. Horizons shorter than half a month (including past dates) count as
// one month so the result is always a usable divisor.
func Months(years float64) int {
	n := int(math.Round(years * 12))
	if n < 1 {
		return 1
	}
	return n
}

// MonthlySIPRequired returns the monthly contribution needed to reach
// targetAmount, inflated over the horizon, after accounting for the growth
// of startingAmount. The result is unrounded and never negative.
func MonthlySIPRequired(targetAmount, years, expectedReturnRate, startingAmount, inflationRate float64) float64 {
	adjustedTarget := targetAmount * math.Pow(1+inflationRate, math.Max(years, 0))
	monthlyRate := expectedReturnRate / 12
	n := float64(Months(years))

	fvLumpSum := startingAmount * math.Pow(1+monthlyRate, n)
	requiredFV := math.Max(adjustedTarget-fvLumpSum, 0)

	if monthlyRate <= 0 {
		return requiredFV / n
	}

	factor := (math.Pow(1+monthlyRate, n) - 1) / monthlyRate
	return requiredFV / math.Max(factor, annuityEpsilon)
}

// PlanInput holds the goal parameters used to derive a plan.
type PlanInput struct {
	TargetAmount       float64
	Years              float64
	ExpectedReturnRate float64
	StartingAmount     float64
	InflationRate      float64
}

// Projection is the monthly SIP required under one strategy.
type Projection struct {
	Strategy   Strategy
	Rate       float64
	MonthlySIP float64
}

// Plan is the derived part of a goal.
type Plan struct {
	RecommendedSIP float64
	Projections    []Projection
}

// NewPlan computes the recommended SIP at the goal's own expected return and
// one projection per fixed strategy. Amounts are rounded to 2 decimals.
func NewPlan(in PlanInput) Plan {
	plan := Plan{
		RecommendedSIP: Round2(MonthlySIPRequired(in.TargetAmount, in.Years, in.ExpectedReturnRate, in.StartingAmount, in.InflationRate)),
		Projections:    make([]Projection, 0, len(Strategies)),
	}
	for _, s := range Strategies {
		sip := MonthlySIPRequired(in.TargetAmount, in.Years, s.Rate, in.StartingAmount, in.InflationRate)
		plan.Projections = append(plan.Projections, Projection{
			Strategy:   s.Strategy,
			Rate:       s.Rate,
			MonthlySIP: Round2(sip),
		})
	}
	return plan
}

// Round2 rounds an amount to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
