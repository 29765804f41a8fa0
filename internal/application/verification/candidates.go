package verification

import (
	"log"

	"github.com/go-verify-api/internal/config"
	"github.com/go-verify-api/internal/domain"
	"github.com/go-verify-api/internal/pkg/validate"
)

// defaultTables are the table names probed when no explicit schema is
// configured. Order matters: the first candidate to produce a row wins.
var defaultTables = []string{
	"licenses",
	"license_verifications",
	"verifications",
	"verification_tokens",
	"qr_tokens",
	"certificates",
	"registrations",
	"documents",
}

// The built-in column dictionary shared by every default candidate.
var (
	defaultTokenColumns     = []string{"token", "qr_token", "verification_token", "public_token", "code", "reference", "uuid", "id"}
	defaultStatusColumns    = []string{"status", "license_status", "state"}
	defaultExpiryColumns    = []string{"expires_at", "expires_on", "expiry_date", "valid_until", "valid_to", "end_date"}
	defaultRevokedColumns   = []string{"revoked_at"}
	defaultSuspendedColumns = []string{"suspended_at"}
	defaultActiveColumns    = []string{"is_active", "active", "enabled"}
	defaultApprovedColumns  = []string{"approved_at", "activated_at", "issued_at"}
	defaultIDColumns        = []string{"id", "license_id"}
	defaultApprovedValues   = []string{"approved", "active", "valid"}
	defaultRevokedValues    = []string{"revoked"}
	defaultSuspendedValues  = []string{"suspended"}
)

func defaultCandidate(table string) domain.Candidate {
	return domain.Candidate{
		Table:              table,
		TokenColumns:       defaultTokenColumns,
		StatusColumns:      defaultStatusColumns,
		ExpiryColumns:      defaultExpiryColumns,
		RevokedAtColumns:   defaultRevokedColumns,
		SuspendedAtColumns: defaultSuspendedColumns,
		ActiveColumns:      defaultActiveColumns,
		ApprovedAtColumns:  defaultApprovedColumns,
		IDColumns:          defaultIDColumns,
		ApprovedValues:     defaultApprovedValues,
		RevokedValues:      defaultRevokedValues,
		SuspendedValues:    defaultSuspendedValues,
	}
}

// Candidates builds the ordered hypothesis list: the configured candidate
// first when one is usable, then the defaults in fixed order.
func Candidates(cfg *config.Config) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(defaultTables)+1)
	if c, ok := configuredCandidate(cfg.Verification); ok {
		out = append(out, c)
	}
	for _, table := range defaultTables {
		out = append(out, defaultCandidate(table))
	}
	return out
}

// configuredCandidate assembles the operator-supplied candidate. It is only
// usable when both a table and at least one token column are configured; a
// candidate that fails validation is logged and skipped rather than breaking
// resolution.
func configuredCandidate(vc config.VerificationConfig) (domain.Candidate, bool) {
	if vc.Table == "" || len(vc.TokenColumns) == 0 {
		return domain.Candidate{}, false
	}
	c := domain.Candidate{
		Table:              vc.Table,
		TokenColumns:       vc.TokenColumns,
		StatusColumns:      vc.StatusColumns,
		ExpiryColumns:      vc.ExpiryColumns,
		RevokedAtColumns:   vc.RevokedAtColumns,
		SuspendedAtColumns: vc.SuspendedAtColumns,
		ActiveColumns:      vc.ActiveColumns,
		ApprovedAtColumns:  vc.ApprovedAtColumns,
		IDColumns:          vc.IDColumns,
		ApprovedValues:     vc.ApprovedValues,
		RevokedValues:      vc.RevokedValues,
		SuspendedValues:    vc.SuspendedValues,
	}
	if err := validate.Struct(c); err != nil {
		log.Printf("WARN: ignoring configured verification candidate: %v", err)
		return domain.Candidate{}, false
	}
	return c, true
}
