package http

import (
	"context"

	"github.com/go-verify-api/internal/domain"
)

// VerificationResolver is the minimal interface the router requires from the
// verification service.
type VerificationResolver interface {
	Resolve(ctx context.Context, rawToken string) domain.VerificationResult
}

// Deps holds all dependencies for the router.
type Deps struct {
	Resolver VerificationResolver
}
