package domain

import "context"

// Service derives store-wide totals.
type Service interface {
	Compute(ctx context.Context) Totals
}
