package gammaerrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAPIError(t *testing.T) {
	cause := errors.New("dns failure")
	err := &APIError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("Unwrap lost the cause")
	}
	if !strings.Contains(err.Error(), "dns failure") {
		t.Errorf("message = %q", err.Error())
	}

	withStatus := &APIError{Status: 503, Body: "unavailable"}
	if !strings.Contains(withStatus.Error(), "503") {
		t.Errorf("message = %q", withStatus.Error())
	}
}

func TestNotFound(t *testing.T) {
	err := NewNotFound("/markets/999")
	if err.Status != 404 {
		t.Errorf("Status = %d", err.Status)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound(NotFoundError) = false")
	}
	if !IsNotFound(fmt.Errorf("lookup: %w", err)) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsNotFound(&APIError{Status: 500}) {
		t.Error("IsNotFound(APIError) = true")
	}
}

func TestIsGamma(t *testing.T) {
	for _, err := range []error{
		&APIError{Status: 500},
		NewNotFound("/x"),
		&ValidationError{Msg: "bad url"},
	} {
		if !IsGamma(err) {
			t.Errorf("IsGamma(%T) = false", err)
		}
		if !IsGamma(fmt.Errorf("wrapped: %w", err)) {
			t.Errorf("IsGamma(wrapped %T) = false", err)
		}
	}
	if IsGamma(errors.New("plain")) {
		t.Error("IsGamma(plain error) = true")
	}
}
