package verification

import (
	"strings"
	"time"

	"github.com/go-verify-api/internal/domain"
)

// deriveStatus reconciles whatever signals the matched row carries into one
// canonical status. Precedence is fixed; the first applicable rule wins, so
// hard-stop signals (expiry, revocation) always override soft ones (status
// strings, approval timestamps).
func deriveStatus(c domain.Candidate, rec domain.Record, now time.Time) domain.Status {
	if v, _, ok := rec.FirstPresent(c.ExpiryColumns); ok {
		if t, parsed := domain.ParseTime(v); parsed && t.Before(now) {
			return domain.StatusExpired
		}
	}
	if _, _, ok := rec.FirstPresent(c.RevokedAtColumns); ok {
		return domain.StatusRevoked
	}
	// Suspension is deliberately collapsed into the public "revoked" status.
	if _, _, ok := rec.FirstPresent(c.SuspendedAtColumns); ok {
		return domain.StatusRevoked
	}
	if v, _, ok := rec.FirstPresent(c.ActiveColumns); ok && !domain.Truthy(v) {
		return domain.StatusRevoked
	}
	if v, _, ok := rec.FirstPresent(c.StatusColumns); ok {
		s := strings.ToLower(strings.TrimSpace(domain.StringValue(v)))
		switch {
		case containsFold(c.RevokedValues, s), containsFold(c.SuspendedValues, s):
			return domain.StatusRevoked
		case containsFold(c.ApprovedValues, s):
			return domain.StatusApproved
		default:
			return domain.StatusPending
		}
	}
	if _, _, ok := rec.FirstPresent(c.ApprovedAtColumns); ok {
		return domain.StatusApproved
	}
	return domain.StatusPending
}

// extractReference picks a presentable identifier from the matched row:
// the candidate's id columns first, then the generic fallbacks.
func extractReference(c domain.Candidate, rec domain.Record) string {
	keys := make([]string, 0, len(c.IDColumns)+3)
	keys = append(keys, c.IDColumns...)
	keys = append(keys, "id", "license_id", "reference")
	if v, _, ok := rec.FirstPresent(keys); ok {
		return domain.StringValue(v)
	}
	return ""
}

func containsFold(vocab []string, s string) bool {
	for _, v := range vocab {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
