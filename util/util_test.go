package util

import (
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sobara/commentbox/util/values"
)

func TestValidateField(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		maxLength int
		wantErr   error
	}{
		{"within bounds", "hello", 10, nil},
		{"at the limit", strings.Repeat("a", 10), 10, nil},
		{"one over the limit", strings.Repeat("a", 11), 10, ErrFieldTooLong},
		{"empty", "", 10, ErrFieldEmpty},
		{"multiline body within bounds", "line one\nline two", 100, nil},
		{"multibyte at the limit", strings.Repeat("é", 100), 100, nil},
		{"multibyte one over the limit", strings.Repeat("é", 101), 100, ErrFieldTooLong},
		{"cjk within bounds", strings.Repeat("字", 60), 100, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateField("field", tc.value, tc.maxLength)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateField(%q) = %v; want nil", tc.value, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ValidateField(%q) = %v; want %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.Unprocessable, http.StatusUnprocessableEntity},
		{values.NotAllowed, http.StatusForbidden},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{values.Error, http.StatusInternalServerError},
		{"anything-else", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			if got := StatusCode(tc.status); got != tc.want {
				t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	if err := ValidEmail("moderator@example.com"); err != nil {
		t.Errorf("expected valid address, got %v", err)
	}
	if err := ValidEmail("Moderator <moderator@example.com>"); err != nil {
		t.Errorf("expected named address to parse, got %v", err)
	}
	if err := ValidEmail(""); err == nil {
		t.Error("expected empty address to be rejected")
	}
	if err := ValidEmail("not an address"); err == nil {
		t.Error("expected malformed address to be rejected")
	}
}
