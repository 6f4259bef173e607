package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataMapsHTTPStatuses(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidCredentials, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeWrongRole, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusBadRequest},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("%s: expected %d got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrongRoleStaysDistinguishableFromForbidden(t *testing.T) {
	wrongRole := New(CodeWrongRole, "influencer role required")
	forbidden := New(CodeForbidden, "not the owner")
	if wrongRole.Code() == forbidden.Code() {
		t.Fatalf("codes must differ even though the HTTP status coincides")
	}
	if MetadataFor(wrongRole.Code()).HTTPStatus != MetadataFor(forbidden.Code()).HTTPStatus {
		t.Fatalf("both role and ownership failures map to 403")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("row missing")
	err := Wrap(CodeNotFound, cause, "influencer not found")
	if err.Unwrap() != cause {
		t.Fatalf("expected cause preserved")
	}
	if As(fmt.Errorf("outer: %w", err)) == nil {
		t.Fatalf("expected typed error recoverable through wrapping")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeInternal, fmt.Errorf("driver exploded"), "lookup user")
	d := Dump(err)
	if d.Code != CodeInternal {
		t.Fatalf("expected code in dump, got %s", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected chain of at least 2, got %v", d.Chain)
	}
}
