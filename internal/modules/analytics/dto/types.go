package dto

import "focusflow/internal/modules/analytics/domain"

// The bundle is served as-is, so the wire types are the domain types.
type (
	Bundle               = domain.Bundle
	DailyStat            = domain.DailyStat
	WeeklyStat           = domain.WeeklyStat
	MonthlyStat          = domain.MonthlyStat
	DailyAverage         = domain.DailyAverage
	StatusStats          = domain.StatusStats
	ProductivityPatterns = domain.ProductivityPatterns
)
