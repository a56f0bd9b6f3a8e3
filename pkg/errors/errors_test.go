package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeNotFound, "block %s not found", "block_3")
	if got := plain.Error(); got != "NOT_FOUND: block block_3 not found" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(ErrCodeMalformedSnapshot, stderrors.New("unexpected EOF"), "import model.json")
	if got := wrapped.Error(); got != "MALFORMED_SNAPSHOT: import model.json: unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeInvalidSide, "unknown port side")

	if !Is(err, ErrCodeInvalidSide) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("Is() should not match plain errors")
	}

	if got := GetCode(err); got != ErrCodeInvalidSide {
		t.Errorf("GetCode() = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}

	// Codes survive further wrapping with %w.
	outer := fmt.Errorf("save failed: %w", err)
	if !Is(outer, ErrCodeInvalidSide) {
		t.Error("Is() should unwrap the chain")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidName, "snapshot name cannot be empty")
	if got := UserMessage(err); got != "snapshot name cannot be empty" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("boom")); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidateKind(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"logical", false},
		{"functional", false},
		{"", true},
		{"Logical", true},
		{"physical", true},
	}

	for _, tt := range tests {
		t.Run("kind "+tt.kind, func(t *testing.T) {
			err := ValidateKind(tt.kind)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKind(%q) = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidKind) {
				t.Errorf("code = %q, want INVALID_KIND", GetCode(err))
			}
		})
	}
}

func TestValidateSide(t *testing.T) {
	for _, side := range []string{"left", "right", "top", "bottom"} {
		if err := ValidateSide(side); err != nil {
			t.Errorf("ValidateSide(%q) = %v", side, err)
		}
	}
	if err := ValidateSide("center"); !Is(err, ErrCodeInvalidSide) {
		t.Errorf("ValidateSide(center) = %v, want INVALID_SIDE", err)
	}
}

func TestValidateSnapshotName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "my-model", false},
		{"with extension", "model.json", false},
		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"path separator", "a/b", true},
		{"backslash", `a\b`, true},
		{"control character", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshotName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSnapshotName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
