package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/go-verify-api/internal/domain"
)

// --- mock ---

type mockResolver struct{ mock.Mock }

func (m *mockResolver) Resolve(ctx context.Context, rawToken string) domain.VerificationResult {
	args := m.Called(ctx, rawToken)
	return args.Get(0).(domain.VerificationResult)
}

// --- helpers ---

func doVerify(t *testing.T, resolver *mockResolver, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	h := NewVerifyHandler(resolver)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestVerify_Approved(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("Resolve", mock.Anything, "tok-123").
		Return(domain.Resolved(domain.StatusApproved, "LIC-1", true))

	rec, body := doVerify(t, resolver, "/v1/verify?token=tok-123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "approved", body["status"])
	assert.Equal(t, "LIC-1", body["reference"])
	assert.Equal(t, true, body["usingServiceRole"])
	resolver.AssertExpectations(t)
}

func TestVerify_NonApprovedStatusesStillReturn200(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusPending, domain.StatusRevoked, domain.StatusExpired} {
		resolver := new(mockResolver)
		resolver.On("Resolve", mock.Anything, "tok-123").
			Return(domain.Resolved(status, "", false))

		rec, body := doVerify(t, resolver, "/v1/verify?token=tok-123")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(status), body["status"])
		_, hasRef := body["reference"]
		assert.False(t, hasRef, "empty reference must be omitted")
	}
}

func TestVerify_MissingToken(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("Resolve", mock.Anything, "").
		Return(domain.Invalid(domain.ReasonMissingToken))

	rec, body := doVerify(t, resolver, "/v1/verify")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "invalid", body["status"])
	assert.Equal(t, "missing_token", body["reason"])
}

func TestVerify_Exhausted(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("Resolve", mock.Anything, "tok-123").
		Return(domain.Exhausted(false))

	rec, body := doVerify(t, resolver, "/v1/verify?token=tok-123")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, domain.ReasonMissingServiceRole, body["reason"])
	assert.Equal(t, domain.MessageReadRestricted, body["message"])
}

func TestVerify_ParamPrecedence(t *testing.T) {
	for _, tc := range []struct {
		target string
		want   string
	}{
		{"/v1/verify?token=a&t=b&id=c", "a"},
		{"/v1/verify?t=b&reference=c", "b"},
		{"/v1/verify?ref=d&id=e", "d"},
		{"/v1/verify?id=e", "e"},
		{"/v1/verify?token=&t=b", "b"}, // empty params don't win
	} {
		resolver := new(mockResolver)
		resolver.On("Resolve", mock.Anything, tc.want).
			Return(domain.Resolved(domain.StatusPending, "", false))

		rec, _ := doVerify(t, resolver, tc.target)

		assert.Equal(t, http.StatusOK, rec.Code, tc.target)
		resolver.AssertExpectations(t)
	}
}
