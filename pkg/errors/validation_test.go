package errors

import (
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "reel.toml", false},
		{"valid nested", "designs/customer/reel.yaml", false},
		{"valid absolute", "/tmp/reel.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 1100)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateDesignPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"toml", "reel.toml", ""},
		{"yaml", "reel.yaml", ""},
		{"yml", "reel.yml", ""},
		{"json", "reel.json", ""},
		{"upper case extension", "REEL.TOML", ""},

		{"no extension", "reel", ErrCodeInvalidFormat},
		{"svg", "reel.svg", ErrCodeInvalidFormat},
		{"empty", "", ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDesignPath(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateDesignPath(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateDesignPath(%q) error = %v, want code %s", tt.input, err, tt.wantCode)
			}
		})
	}
}

func TestValidateView(t *testing.T) {
	tests := []struct {
		view    string
		wantErr bool
	}{
		{"side", false},
		{"front", false},
		{"both", false},
		{"top", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			err := ValidateView(tt.view)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateView(%q) error = %v, wantErr %v", tt.view, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidDimensions,
		ErrCodeInvalidFormat,
		ErrCodeInvalidView,
		ErrCodeInvalidConfig,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeCache,
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
