package models

// Insight is a single AI recommendation.
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// InsightResponse is the result of a prediction request.
type InsightResponse struct {
	Recommendations []Insight `json:"recommendations"`
	Note            string    `json:"note,omitempty"`
}

// PredictionRequest asks for insights for a user, optionally with the
// user's portfolio and goals attached.
type PredictionRequest struct {
	UserID    string     `json:"user_id" binding:"required"`
	Portfolio *Portfolio `json:"portfolio,omitempty"`
	Goals     []Goal     `json:"goals,omitempty"`
}
