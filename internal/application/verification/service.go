package verification

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-verify-api/internal/config"
	"github.com/go-verify-api/internal/domain"
	"github.com/go-verify-api/internal/pkg/id"
)

// Service resolves opaque tokens to a canonical verification status.
type Service interface {
	Resolve(ctx context.Context, rawToken string) domain.VerificationResult
}

// LookupStore executes one equality point lookup: the row (at most one) where
// column equals token in table. Implementations wrap failures in the domain
// sentinels so the engine can classify them: domain.ErrNotFound when no row
// matched, domain.ErrSchemaAbsent when the table or column does not exist,
// domain.ErrAccessDenied when the store refused the read.
type LookupStore interface {
	Lookup(ctx context.Context, table, column, token string) (domain.Record, error)
}

type service struct {
	store       LookupStore
	candidates  []domain.Candidate
	serviceRole bool
	timeout     time.Duration
	now         func() time.Time
}

const defaultLookupTimeout = 3 * time.Second

// NewService builds the resolver from configuration. The candidate list is
// assembled once; it only depends on process-wide environment state.
func NewService(store LookupStore, cfg *config.Config) Service {
	timeout := cfg.LookupTimeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &service{
		store:       store,
		candidates:  Candidates(cfg),
		serviceRole: cfg.ServiceRoleConfigured(),
		timeout:     timeout,
		now:         time.Now,
	}
}

// Resolve walks candidates and their token columns strictly in order and
// stops at the first row found. Expected schema absence, permission denials
// and timeouts are all non-fatal per attempt; only total exhaustion is
// terminal, and no per-attempt error ever reaches the caller.
func (s *service) Resolve(ctx context.Context, rawToken string) domain.VerificationResult {
	token := Normalize(rawToken)
	if token == "" {
		return domain.Invalid(domain.ReasonMissingToken)
	}

	trace := id.New()
	var skipped int
	var lastErr error

	for _, cand := range s.candidates {
		for _, col := range cand.TokenColumns {
			if ctx.Err() != nil {
				log.Printf("verification trace=%s cancelled after %d skipped attempts", trace, skipped)
				return domain.Exhausted(s.serviceRole)
			}
			rec, err := s.lookup(ctx, cand.Table, col, token)
			switch {
			case err == nil:
				status := deriveStatus(cand, rec, s.now())
				log.Printf("verification trace=%s hit table=%s column=%s status=%s", trace, cand.Table, col, status)
				return domain.Resolved(status, extractReference(cand, rec), s.serviceRole)
			case errors.Is(err, domain.ErrNotFound):
				continue
			case errors.Is(err, domain.ErrSchemaAbsent):
				skipped++
				continue
			default:
				// Denied reads, timeouts and anything unexpected are
				// tolerated identically for control flow, but remembered as
				// the most relevant diagnostic.
				lastErr = err
				continue
			}
		}
	}

	// Diagnostics stay server-side; the caller only sees the coarse
	// reason/message pair.
	log.Printf("verification trace=%s exhausted candidates=%d schema_absent=%d last_err=%v", trace, len(s.candidates), skipped, lastErr)
	return domain.Exhausted(s.serviceRole)
}

func (s *service) lookup(ctx context.Context, table, column, token string) (domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.Lookup(ctx, table, column, token)
}
