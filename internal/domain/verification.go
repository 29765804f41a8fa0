package domain

// Status is the canonical externally visible verification status.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRevoked  Status = "revoked"
	StatusExpired  Status = "expired"
	StatusInvalid  Status = "invalid"
	StatusError    Status = "error"
)

// Closed set of failure reason codes. The exhaustion reasons depend only on
// whether elevated read credentials are configured, never on what any single
// lookup attempt reported.
const (
	ReasonMissingToken           = "missing_token"
	ReasonNotFoundOrUnconfigured = "not_found_or_unconfigured"
	ReasonMissingServiceRole     = "missing_service_role_key_or_rls_blocks_read"
)

// The only two messages ever attached to an exhaustion failure. Raw store
// error text is never echoed to the caller.
const (
	MessageNotFound       = "no verification record matched the supplied token"
	MessageReadRestricted = "verification records could not be read with the configured credentials"
)

// VerificationResult is the outcome of resolving one token.
type VerificationResult struct {
	OK               bool
	Status           Status
	Reference        string
	UsingServiceRole bool
	Reason           string
	Message          string
}

// Invalid builds the terminal result for an empty or unusable token.
func Invalid(reason string) VerificationResult {
	return VerificationResult{Status: StatusInvalid, Reason: reason}
}

// Resolved builds a success result.
func Resolved(status Status, reference string, serviceRole bool) VerificationResult {
	return VerificationResult{
		OK:               true,
		Status:           status,
		Reference:        reference,
		UsingServiceRole: serviceRole,
	}
}

// Exhausted builds the failure result for a search that tried every candidate
// without a hit. The reason/message pair is chosen solely from the
// service-role capability flag.
func Exhausted(serviceRole bool) VerificationResult {
	r := VerificationResult{Status: StatusError, UsingServiceRole: serviceRole}
	if serviceRole {
		r.Reason = ReasonNotFoundOrUnconfigured
		r.Message = MessageNotFound
	} else {
		r.Reason = ReasonMissingServiceRole
		r.Message = MessageReadRestricted
	}
	return r
}
