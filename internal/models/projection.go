package models

// ProjectionPoint is the projected value of a plan at the end of a month.
type ProjectionPoint struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}
