// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finpredictor/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("risk_profile", validateRiskProfile)
		_ = v.RegisterValidation("priority_level", validatePriorityLevel)
		_ = v.RegisterValidation("asset_type", validateAssetType)
	}
}

func validateRiskProfile(fl validator.FieldLevel) bool {
	switch models.RiskProfile(fl.Field().String()) {
	case models.RiskConservative, models.RiskModerate, models.RiskAggressive:
		return true
	}
	return false
}

func validatePriorityLevel(fl validator.FieldLevel) bool {
	switch models.PriorityLevel(fl.Field().String()) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func validateAssetType(fl validator.FieldLevel) bool {
	switch models.AssetType(fl.Field().String()) {
	case models.AssetTypeStock, models.AssetTypeMutualFund, models.AssetTypeCrypto,
		models.AssetTypeBond, models.AssetTypeCash, models.AssetTypeOther:
		return true
	}
	return false
}
