package models

// RiskProfile is the investor temperament a goal is planned for.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// PriorityLevel ranks goals against each other.
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

// StrategyProjection is the monthly SIP required under a fixed return assumption.
type StrategyProjection struct {
	Strategy         RiskProfile `json:"strategy"`
	AnnualReturnRate float64     `json:"annual_return_rate"`
	MonthlySIP       float64     `json:"monthly_sip"`
}

// Goal is a savings target owned by a user. RecommendedSIP, Projections and
// CurrentProgress are derived once when the goal is created.
type Goal struct {
	Base
	UserID                string        `json:"user_id"`
	Title                 string        `json:"title"`
	TargetAmount          float64       `json:"target_amount"`
	TargetDate            Date          `json:"target_date"`
	StartingAmount        float64       `json:"starting_amount"`
	CurrentSIP            float64       `json:"current_sip"`
	ExpectedReturnRate    float64       `json:"expected_return_rate"`
	InflationRate         float64       `json:"inflation_rate"`
	ExpectedInflationRate float64       `json:"expected_inflation_rate"`
	SalaryGrowthRate      float64       `json:"salary_growth_rate"`
	RiskProfile           RiskProfile   `json:"risk_profile"`
	GoalCategory          string        `json:"goal_category,omitempty"`
	LinkedAssets          []string      `json:"linked_assets"`
	PriorityLevel         PriorityLevel `json:"priority_level,omitempty"`

	RecommendedSIP  float64              `json:"recommended_sip"`
	Projections     []StrategyProjection `json:"projections"`
	CurrentProgress float64              `json:"current_progress"`
}
