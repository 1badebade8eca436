package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Normalize(ctx context.Context, in NormalizeInput) (NormalizeOutput, error)
	NormalizeBatch(ctx context.Context, in BatchInput) (BatchOutput, error)
	Stats() RulesStats
}
