package cipher

import (
	"errors"
	"testing"
)

// TestParseShiftKey tests integer key parsing and normalization
func TestParseShiftKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    int
		wantErr bool
	}{
		{"Positive key", "3", 3, false},
		{"Zero", "0", 0, false},
		{"Explicit plus sign", "+7", 7, false},
		{"Negative key", "-3", 23, false},
		{"Negative beyond one cycle", "-29", 23, false},
		{"Large key", "123456789", 1, false},
		{"Most negative 64-bit", "-9223372036854775808", 18, false},
		{"Empty string", "", 0, true},
		{"Just a sign", "-", 0, true},
		{"Trailing characters", "12a", 0, true},
		{"Leading whitespace", " 5", 0, true},
		{"Trailing whitespace", "5 ", 0, true},
		{"Embedded whitespace", "1 2", 0, true},
		{"Hex notation", "0x12", 0, true},
		{"Beyond signed 64-bit range", "9223372036854775808", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShiftKey(Upper, tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseShiftKey(%q) expected an error", tt.key)
				}
				if !errors.Is(err, ErrInvalidKey) {
					t.Errorf("ParseShiftKey(%q) error = %v, want ErrInvalidKey", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShiftKey(%q) unexpected error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("ParseShiftKey(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

// TestValidateKeyword tests keyword validation against the uppercase range
func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		wantErr bool
	}{
		{"Valid keyword", "KEY", false},
		{"Single letter", "A", false},
		{"Range endpoints", "AZ", false},
		{"Empty keyword", "", true},
		{"Lowercase letter", "KEy", true},
		{"Digit", "K3Y", true},
		{"Embedded space", "K Y", true},
		{"Punctuation", "KEY!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyword(Upper, tt.keyword)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateKeyword(%q) expected an error", tt.keyword)
				}
				if !errors.Is(err, ErrInvalidKey) {
					t.Errorf("ValidateKeyword(%q) error = %v, want ErrInvalidKey", tt.keyword, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateKeyword(%q) unexpected error: %v", tt.keyword, err)
			}
		})
	}
}

// TestValidateKeywordOtherRanges tests that validation follows the range,
// not a fixed alphabet
func TestValidateKeywordOtherRanges(t *testing.T) {
	lower := Range{Low: 'a', High: 'z'}

	if err := ValidateKeyword(lower, "key"); err != nil {
		t.Errorf(`ValidateKeyword(lower, "key") unexpected error: %v`, err)
	}
	if err := ValidateKeyword(lower, "KEY"); err == nil {
		t.Error(`ValidateKeyword(lower, "KEY") expected an error`)
	}
}
