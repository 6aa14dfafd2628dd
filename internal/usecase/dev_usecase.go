package usecase

import "context"

// DevUsecase exposes development-only maintenance.
type DevUsecase interface {
	// ResetDatabase recreates the schema and loads the seed accounts.
	ResetDatabase(ctx context.Context) error
}
