package finance

import (
	"math"
	"time"
)

// Point is the value of a contribution plan at the end of a month.
type Point struct {
	Month int
	Value float64
}

// ProjectPortfolio simulates a plan that starts with startingAmount and adds
// monthlySIP at the end of every month, growing at the annual expectedReturn
// net of expenseRatio. It returns months 0 through round(years*12); month 0 is
// the starting amount. Emitted values are rounded, accumulation is not.
func ProjectPortfolio(startingAmount, monthlySIP, years, expectedReturn, expenseRatio float64) []Point {
	months := int(math.Round(years * 12))
	if months < 0 {
		months = 0
	}
	monthlyRate := (expectedReturn - expenseRatio) / 12

	points := make([]Point, 0, months+1)
	value := startingAmount
	points = append(points, Point{Month: 0, Value: Round2(value)})
	for m := 1; m <= months; m++ {
		value = value*(1+monthlyRate) + monthlySIP
		points = append(points, Point{Month: m, Value: Round2(value)})
	}
	return points
}

// HorizonYears returns the time from today to target in fractional years,
// counted as whole calendar years plus the day-of-year difference over 365.
// Past targets give a negative horizon.
func HorizonYears(target, today time.Time) float64 {
	return float64(target.Year()-today.Year()) + float64(target.YearDay()-today.YearDay())/365.0
}
