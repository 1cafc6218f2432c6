package services

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/finance"
	"finpredictor/internal/logger"
	"finpredictor/internal/models"
	"finpredictor/internal/store"
)

// GoalInput holds a goal as requested, with defaults already applied.
type GoalInput struct {
	Title                 string
	TargetAmount          float64
	TargetDate            models.Date
	StartingAmount        float64
	CurrentSIP            float64
	ExpectedReturnRate    float64
	InflationRate         float64
	ExpectedInflationRate float64
	SalaryGrowthRate      float64
	RiskProfile           models.RiskProfile
	GoalCategory          string
	LinkedAssets          []string
	PriorityLevel         models.PriorityLevel
}

// goalService plans and stores savings goals.
type goalService struct {
	goals  store.Store[models.Goal]
	valuer AssetValuer
	locks  *store.KeyedMutex
	now    func() time.Time
	log    *zap.SugaredLogger
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(goals store.Store[models.Goal], valuer AssetValuer) GoalServicer {
	return &goalService{
		goals:  goals,
		valuer: valuer,
		locks:  store.NewKeyedMutex(),
		now:    time.Now,
		log:    logger.Named("goals"),
	}
}

// CreateGoal derives the recommended SIP, the strategy projections and the
// current progress, then stores the goal. Creation is serialized per user so
// each goal sees a consistent valuation of its linked assets.
func (s *goalService) CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	progress, err := s.valuer.LinkedValue(ctx, userID, in.LinkedAssets)
	if err != nil {
		s.log.Warnw("linked asset valuation failed, counting no progress",
			"user_id", userID,
			"linked_assets", len(in.LinkedAssets),
			"error", err,
		)
		progress = 0
	}

	today := s.now().UTC()
	plan := finance.NewPlan(finance.PlanInput{
		TargetAmount:       in.TargetAmount,
		Years:              finance.HorizonYears(in.TargetDate.Time, today),
		ExpectedReturnRate: in.ExpectedReturnRate,
		StartingAmount:     in.StartingAmount,
		InflationRate:      in.InflationRate,
	})

	projections := make([]models.StrategyProjection, 0, len(plan.Projections))
	for _, p := range plan.Projections {
		projections = append(projections, models.StrategyProjection{
			Strategy:         models.RiskProfile(p.Strategy),
			AnnualReturnRate: p.Rate,
			MonthlySIP:       p.MonthlySIP,
		})
	}

	linked := in.LinkedAssets
	if linked == nil {
		linked = []string{}
	}

	goal := models.Goal{
		Base:                  models.NewBase(),
		UserID:                userID,
		Title:                 in.Title,
		TargetAmount:          in.TargetAmount,
		TargetDate:            in.TargetDate,
		StartingAmount:        in.StartingAmount,
		CurrentSIP:            in.CurrentSIP,
		ExpectedReturnRate:    in.ExpectedReturnRate,
		InflationRate:         in.InflationRate,
		ExpectedInflationRate: in.ExpectedInflationRate,
		SalaryGrowthRate:      in.SalaryGrowthRate,
		RiskProfile:           in.RiskProfile,
		GoalCategory:          in.GoalCategory,
		LinkedAssets:          linked,
		PriorityLevel:         in.PriorityLevel,
		RecommendedSIP:        plan.RecommendedSIP,
		Projections:           projections,
		CurrentProgress:       finance.Round2(math.Max(progress, 0)),
	}

	if err := s.goals.Put(ctx, userID, goal.ID, goal); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Debugw("goal created",
		"user_id", userID,
		"goal_id", goal.ID,
		"recommended_sip", goal.RecommendedSIP,
	)
	return &goal, nil
}

// ListGoals returns the user's goals in creation order.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetGoal retrieves one of the user's goals.
func (s *goalService) GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	goal, err := s.goals.Get(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// DeleteGoal removes one of the user's goals.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if err := s.goals.Delete(ctx, userID, goalID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.ErrGoalNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
