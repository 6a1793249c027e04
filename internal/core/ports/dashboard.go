package ports

import (
	"context"

	"github.com/ardipermana59/hbus/internal/core/domain"
)

type DashboardService interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}
