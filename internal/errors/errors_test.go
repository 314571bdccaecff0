package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E001")
	if err.Code != "E001" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryTemplate {
		t.Errorf("Category = %q", err.Category)
	}
	if err.Message == "" || err.Detail == "" || err.DocURL == "" {
		t.Errorf("template fields incomplete: %+v", err)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestErrorStringHasCode(t *testing.T) {
	got := New("E040").Error()
	if !strings.Contains(got, "E040") {
		t.Errorf("Error() = %q, missing code", got)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New("E120").Wrap(cause)
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestFromError(t *testing.T) {
	cause := stderrors.New("boom")
	err := FromError(cause, "E122")
	if err.Code != "E122" {
		t.Errorf("Code = %q", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause lost")
	}

	// Already-typed errors pass through unchanged.
	again := FromError(err, "E120")
	if again != err {
		t.Error("WeftError rewrapped")
	}

	if FromError(nil, "E120") != nil {
		t.Error("nil error should stay nil")
	}
}

func TestRegisteredCodesComplete(t *testing.T) {
	for _, code := range []string{
		"E001", "E002", "E003", "E004", "E005",
		"E040", "E041",
		"E100", "E101", "E102",
		"E120", "E121", "E122",
	} {
		tpl, ok := Lookup(code)
		if !ok {
			t.Errorf("code %s not registered", code)
			continue
		}
		if tpl.Message == "" || tpl.Category == "" {
			t.Errorf("code %s incomplete: %+v", code, tpl)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	DisableColors()
	defer EnableColors()

	got := New("E102").WithDetail("port 99999 out of range").FormatCompact()
	if !strings.Contains(got, "E102") {
		t.Errorf("FormatCompact = %q", got)
	}
}

func TestFormatIncludesSuggestion(t *testing.T) {
	DisableColors()
	defer EnableColors()

	got := New("E100").WithSuggestion("run weft init").Format()
	for _, want := range []string{"E100", "weft init"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format missing %q:\n%s", want, got)
		}
	}
}
