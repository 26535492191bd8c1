package pricing_rules

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/service/pricing/models"
)

type PricingService interface {
	Create(ctx context.Context, sportID int64, req *models.CreatePricingRuleRequest) (*models.PricingRuleResponse, error)
	ListBySport(ctx context.Context, sportID int64) (*models.PricingRuleListResponse, error)
	SetActive(ctx context.Context, ruleID int64, active bool) (*models.PricingRuleResponse, error)
	Delete(ctx context.Context, ruleID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
