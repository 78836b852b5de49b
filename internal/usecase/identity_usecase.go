package usecase

import (
	"context"

	"critique/internal/domain/entity"
)

// IdentityUsecase resolves a bearer token to the live user it names.
// Every failure mode (malformed token, bad signature, expired token, user
// deleted after issuance) collapses into the same unauthenticated error so
// callers cannot probe which step rejected them.
type IdentityUsecase interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}
