package errors

import (
	"math"
	"testing"
)

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"typical", 960, false},
		{"one", 1, false},
		{"max", MaxDimension, false},

		{"zero", 0, true},
		{"negative", -10, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
		{"too large", MaxDimension + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateDimension(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 12.5, false},

		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"positive inf", math.Inf(1), true},
		{"negative inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMagnitude(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMagnitude(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeMalformedInput) {
				t.Errorf("ValidateMagnitude(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeMalformedInput)
			}
		})
	}
}

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "bar1", false},
		{"with colon", "team:a", false},
		{"unicode", "größe", false},

		{"empty", "", true},
		{"newline", "bar\n1", true},
		{"null byte", "bar\x001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSnapshotPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"json", "data/week1.json", ""},
		{"toml", "week2.toml", ""},
		{"upper case extension", "WEEK3.JSON", ""},

		{"empty", "", ErrCodeInvalidPath},
		{"null byte", "a\x00.json", ErrCodeInvalidPath},
		{"yaml", "week.yaml", ErrCodeInvalidFormat},
		{"no extension", "week", ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshotPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateSnapshotPath(%q) code = %q, want %q (err: %v)", tt.input, got, tt.wantCode, err)
			}
		})
	}
}
