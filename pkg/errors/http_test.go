package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	base := NewHTTPError(120001, "message is required")
	wrapped := fmt.Errorf("handler: %w", base)

	he, ok := AsHTTPError(wrapped)
	if !ok {
		t.Fatal("Expected wrapped error to unwrap to HTTPError")
	}
	if he.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", he.StatusCode)
	}
	if he.Error() != "message is required" {
		t.Errorf("Unexpected message %q", he.Error())
	}

	if _, ok := AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("Expected plain error not to be an HTTPError")
	}

	tooMany := NewHTTPErrorWithStatus(429, "slow down", http.StatusTooManyRequests)
	if tooMany.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", tooMany.StatusCode)
	}
}
