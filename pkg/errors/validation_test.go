package errors

import (
	"strings"
	"testing"
)

func TestValidateStateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default key", "border-radius-app-state", false},
		{"with dot", "radii.v2", false},
		{"uuid", "7d444840-9dc0-11d1-b245-5ffdce74fad2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("k", MaxKeyLength+1), true},
		{"path traversal", "..", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStateKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStateKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidKey) {
				t.Errorf("ValidateStateKey(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidKey)
			}
		})
	}
}

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", "7d444840-9dc0-11d1-b245-5ffdce74fad2", false},

		{"empty", "", true},
		{"garbage", "not-a-uuid", true},
		{"braced", "{7d444840-9dc0-11d1-b245-5ffdce74fad2}", true},
		{"urn", "urn:uuid:7d444840-9dc0-11d1-b245-5ffdce74fad2", true},
		{"no dashes", "7d4448409dc011d1b2455ffdce74fad2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		format  string
		wantErr bool
	}{
		{"svg", "out/preview.svg", "svg", false},
		{"no extension", "preview", "png", false},
		{"uppercase ext", "preview.PNG", "png", false},
		{"no format", "preview.bin", "", false},

		{"empty", "", "svg", true},
		{"mismatch", "preview.png", "svg", true},
		{"control char", "pre\x01view.svg", "svg", true},
		{"too long", strings.Repeat("a", 501), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q, %q) error = %v, wantErr %v", tt.path, tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"svg", "png", "json", "css"} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	for _, f := range []string{"", "SVG", "pdf", "svg "} {
		if err := ValidateFormat(f); !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) = %v, want INVALID_FORMAT", f, err)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidCorner,
		ErrCodeInvalidAxis,
		ErrCodeInvalidMode,
		ErrCodeInvalidShape,
		ErrCodeInvalidFormat,
		ErrCodeInvalidKey,
		ErrCodePresetNotFound,
		ErrCodeSessionNotFound,
		ErrCodeStorage,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
