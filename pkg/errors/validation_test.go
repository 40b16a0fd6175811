package errors

import (
	"math"
	"testing"
)

func TestValidateSpanCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"single lane", 1, false},
		{"grid", 4, false},
		{"max", MaxSpanCount, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"too large", MaxSpanCount + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpanCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpanCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateSpanCount(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidatePrefetchCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"disabled", 0, false},
		{"positive", 8, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefetchCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefetchCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"half", 0.5, false},
		{"one", 1, false},

		{"negative", -0.1, true},
		{"above one", 1.01, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFraction("keyline", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFraction(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtraSpace(t *testing.T) {
	if err := ValidateExtraSpace("extra layout space", 0); err != nil {
		t.Errorf("ValidateExtraSpace(0) error = %v", err)
	}
	if err := ValidateExtraSpace("spacing", -2); err == nil {
		t.Error("ValidateExtraSpace(-2) should fail")
	}
}

func TestValidateViewport(t *testing.T) {
	tests := []struct {
		name                  string
		size, secondary       int
		paddingStart, padding int
		unbounded             bool
		wantErr               bool
	}{
		{"plain", 1000, 400, 0, 0, false, false},
		{"padded", 1000, 400, 50, 50, false, false},
		{"unbounded zero size", 0, 400, 0, 0, true, false},

		{"negative size", -1, 400, 0, 0, false, true},
		{"negative secondary", 100, -1, 0, 0, false, true},
		{"negative padding", 100, 10, -1, 0, false, true},
		{"padding fills viewport", 100, 10, 50, 50, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateViewport(tt.size, tt.secondary, tt.paddingStart, tt.padding, tt.unbounded)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateViewport() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "scenarios/grid.toml", false},
		{"absolute", "/etc/keyline/grid.toml", false},

		{"empty", "", true},
		{"null byte", "grid\x00.toml", true},
		{"newline", "grid\n.toml", true},
		{"padded", " grid.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
