package engine

import (
	"strings"
	"testing"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

func TestPasswordUsesOnlyCharset(t *testing.T) {
	tests := []struct {
		name    string
		req     PasswordRequest
		charset string
	}{
		{name: "numbers only", req: PasswordRequest{Length: 64, Numbers: true}, charset: Numbers},
		{name: "letters", req: PasswordRequest{Length: 64, Uppercase: true, Lowercase: true}, charset: Uppercase + Lowercase},
		{name: "all classes", req: PasswordRequest{Length: 64, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}, charset: Uppercase + Lowercase + Numbers + Symbols},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pw, err := seeded(8).Password(tc.req)
			if err != nil {
				t.Fatalf("Password returned error: %v", err)
			}
			if len(pw) != tc.req.Length {
				t.Fatalf("Password length = %d, want %d", len(pw), tc.req.Length)
			}
			for _, r := range pw {
				if !strings.ContainsRune(tc.charset, r) {
					t.Fatalf("Password %q contains %q outside charset", pw, r)
				}
			}
		})
	}
}

func TestPasswordExcludeSimilar(t *testing.T) {
	req := PasswordRequest{
		Length:         4000,
		Uppercase:      true,
		Lowercase:      true,
		Numbers:        true,
		Symbols:        true,
		ExcludeSimilar: true,
	}
	pw, err := seeded(10).Password(req)
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	if strings.ContainsAny(pw, "IOlo01|") {
		t.Fatalf("Password contains a similar-looking character")
	}
}

func TestPasswordCharset(t *testing.T) {
	req := PasswordRequest{Numbers: true, ExcludeSimilar: true}
	if got := req.Charset(); got != "23456789" {
		t.Fatalf("Charset = %q, want 23456789", got)
	}
	if got := (PasswordRequest{}).Charset(); got != "" {
		t.Fatalf("Charset = %q, want empty", got)
	}
}

func TestPasswordErrors(t *testing.T) {
	tests := []struct {
		name string
		req  PasswordRequest
		opts []Option
		code apperrors.Code
	}{
		{name: "zero length", req: PasswordRequest{Length: 0, Numbers: true}, code: apperrors.CodeInvalidCount},
		{name: "length checked before alphabet", req: PasswordRequest{Length: 0}, code: apperrors.CodeInvalidCount},
		{name: "empty alphabet", req: PasswordRequest{Length: 8}, code: apperrors.CodeEmptyAlphabet},
		{name: "above limit", req: PasswordRequest{Length: 17, Numbers: true}, opts: []Option{WithMaxCount(16)}, code: apperrors.CodeInvalidCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seeded(1, tc.opts...).Password(tc.req)
			requireCode(t, err, tc.code)
		})
	}
}
