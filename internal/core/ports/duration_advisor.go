package ports

import (
	"context"
)

// DurationAdvisor estimates how long an order's production run will take, for
// display on the planning dashboard. The estimate is advisory only and never
// gates a transition; callers must tolerate failures by planning without it.
type DurationAdvisor interface {
	// EstimateDurationHours returns an estimated production duration in hours
	// for a free-text description of the order.
	EstimateDurationHours(ctx context.Context, orderDescription string) (int, error)
}
