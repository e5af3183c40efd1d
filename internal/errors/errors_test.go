package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "runtime error",
			code:    "E001",
			wantMsg: "Fragment backing buffer is nil",
			wantCat: CategoryRuntime,
		},
		{
			name:    "validation error",
			code:    "E004",
			wantMsg: "Directive already registered",
			wantCat: CategoryValidation,
		},
		{
			name:    "config error",
			code:    "E006",
			wantMsg: "Invalid directive manifest",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("E002")
	got := err.Error()
	if got != "E002: Fragment range out of bounds" {
		t.Errorf("Error() = %q", got)
	}

	noCode := Newf(CategoryRuntime, "ad-hoc failure %d", 7)
	if noCode.Error() != "ad-hoc failure 7" {
		t.Errorf("Error() = %q", noCode.Error())
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := New("E006").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil) should be nil")
	}

	original := New("E003")
	if got := FromError(original, "E001"); got != original {
		t.Error("FromError should pass *Error through unchanged")
	}

	wrapped := FromError(fmt.Errorf("boom"), "E006")
	if wrapped.Code != "E006" {
		t.Errorf("Code = %q, want E006", wrapped.Code)
	}
	if wrapped.Wrapped == nil {
		t.Error("cause should be wrapped")
	}
}

func TestIsCode(t *testing.T) {
	err := New("E008")
	if !IsCode(err, "E008") {
		t.Error("IsCode should match the error's own code")
	}
	if IsCode(err, "E001") {
		t.Error("IsCode should not match a different code")
	}

	outer := fmt.Errorf("while writing: %w", err)
	if !IsCode(outer, "E008") {
		t.Error("IsCode should look through wrapping")
	}
	if IsCode(nil, "E008") {
		t.Error("IsCode(nil) should be false")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E005").WithDetail("directive at index 2")
	got := err.FormatCompact()
	want := "E005: Directive name is empty (directive at index 2)"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatContainsSections(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E003").
		WithDetail("pool returned 3 bytes for a 9 byte request").
		Wrap(fmt.Errorf("bad pool"))

	out := err.Format()
	for _, want := range []string{
		"ERROR E003",
		"pool returned 3 bytes",
		"Caused by: bad pool",
		"Hint:",
		"Learn more:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatErrorUnwrapsChain(t *testing.T) {
	DisableColors()
	defer EnableColors()

	wrapped := fmt.Errorf("loading manifest: %w", New("E006").WithDetail("unexpected EOF"))
	out := formatError(wrapped)
	for _, want := range []string{"ERROR E006", "unexpected EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatError() missing %q in:\n%s", want, out)
		}
	}

	plain := formatError(stderrors.New("boom"))
	if !strings.Contains(plain, "boom") {
		t.Errorf("formatError() missing message in %q", plain)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 15)
	for _, line := range lines {
		if len(line) > 15 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if len(lines) < 3 {
		t.Errorf("expected multiple wrapped lines, got %d", len(lines))
	}
}
