package errors

import (
	"math"
	"testing"
)

func TestValidateFinite(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"all finite", []float64{0, 1, -2.5, 1e300}, false},
		{"no values", nil, false},
		{"nan", []float64{1, math.NaN()}, true},
		{"positive inf", []float64{math.Inf(1)}, true},
		{"negative inf", []float64{3, 4, math.Inf(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFinite("test", tt.values...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFinite(%v) error = %v, wantErr %v", tt.values, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGeometry) {
				t.Errorf("ValidateFinite() code = %v, want %v", GetCode(err), ErrCodeInvalidGeometry)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"short hex", "#000", false},
		{"long hex", "#1a2b3c", false},
		{"keyword", "currentColor", false},
		{"none", "none", false},
		{"rgb", "rgb(10, 20, 30)", false},
		{"css var", "var(--wired-card-background-fill)", false},

		{"quote injection", `red" onload="x`, true},
		{"angle bracket", "<script>", true},
		{"bad hex", "#12", true},
		{"too long", "#" + string(make([]byte, 80)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"single", "cardFill", false},
		{"multiple", "knob knobfill", false},
		{"dash", "toggle-bar", false},

		{"quote", `a"b`, true},
		{"leading digit", "1abc", true},
		{"double space", "a  b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClass(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClass(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
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
		{"relative", "scenes/card.toml", false},
		{"absolute", "/tmp/scene.json", false},

		{"empty", "", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"whitespace", " scene.toml", true},
		{"too long", string(make([]byte, 600)), true},
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
