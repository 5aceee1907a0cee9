package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingAttribute, "no column %q in node table", "group")

	if err.Code != ErrCodeMissingAttribute {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeMissingAttribute)
	}
	if want := `no column "group" in node table`; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if !strings.Contains(err.Error(), "CONFIG_MISSING_ATTRIBUTE") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "rendering failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, want cause text", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDanglingEdge, "edge (a, z) references unknown node")

	if !Is(err, ErrCodeDanglingEdge) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, ErrCodeMissingAttribute) {
		t.Error("Is() = true, want false for different code")
	}
	if Is(stderrors.New("plain"), ErrCodeDanglingEdge) {
		t.Error("Is() = true, want false for non-structured error")
	}

	// Wrapped inside a plain fmt error.
	wrapped := fmt.Errorf("layout: %w", err)
	if !Is(wrapped, ErrCodeDanglingEdge) {
		t.Error("Is() should unwrap the chain")
	}
}

func TestTaxonomyPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantConfig bool
		wantData   bool
	}{
		{"MissingAttribute", New(ErrCodeMissingAttribute, "x"), true, false},
		{"TooManyGroups", New(ErrCodeTooManyGroups, "x"), true, false},
		{"DanglingEdge", New(ErrCodeDanglingEdge, "x"), false, true},
		{"DuplicateNode", New(ErrCodeDuplicateNode, "x"), false, true},
		{"Internal", New(ErrCodeInternal, "x"), false, false},
		{"Plain", stderrors.New("x"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfiguration(tt.err); got != tt.wantConfig {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.wantConfig)
			}
			if got := IsDataConsistency(tt.err); got != tt.wantData {
				t.Errorf("IsDataConsistency() = %v, want %v", got, tt.wantData)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeBadValue, "x")); got != ErrCodeBadValue {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeBadValue)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeBadValue, "padding must be in [0, 0.5]")
	if got := UserMessage(err); got != "padding must be in [0, 0.5]" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}

func TestWarningString(t *testing.T) {
	w := Warningf(WarnPaletteOverflow, "kind", "14 categories exceed palette capacity 12")
	s := w.String()
	for _, want := range []string{"PALETTE_OVERFLOW", "kind", "14 categories"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
