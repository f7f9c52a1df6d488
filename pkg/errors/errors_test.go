package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidScene, "scene %q has no shapes", "empty")
	want := `INVALID_SCENE: scene "empty" has no shapes`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "writing output")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "INTERNAL_ERROR: writing output: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeSceneNotFound, "no such scene")

	if !Is(err, ErrCodeSceneNotFound) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if got := GetCode(err); got != ErrCodeSceneNotFound {
		t.Errorf("GetCode() = %s, want %s", got, ErrCodeSceneNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unsupported format")
	if got := UserMessage(err); got != "unsupported format" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidateSceneName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "sunset", false},
		{"ValidWithDash", "sunset-beach_v2", false},
		{"Empty", "", true},
		{"Traversal", "../etc/passwd", true},
		{"Slash", "a/b", true},
		{"Backslash", `a\b`, true},
		{"Hidden", ".secret", true},
		{"ControlChar", "a\x01b", true},
		{"TooLong", string(make([]byte, 200)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSceneName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSceneName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"svg", "png", "pdf"} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%s) = %v", f, err)
		}
	}
	for _, f := range []string{"", "gif", "jpeg"} {
		if err := ValidateFormat(f); err == nil {
			t.Errorf("ValidateFormat(%q) should fail", f)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out/drawing.svg"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
	if err := ValidateOutputPath(""); err == nil {
		t.Error("empty path should fail")
	}
	if err := ValidateOutputPath("a\x00b"); err == nil {
		t.Error("null byte should fail")
	}
}
