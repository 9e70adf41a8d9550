package normalize

import "testing"

func TestCleanString(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means absent
	}{
		{"Ana Silva", "Ana Silva"},
		{"  Ana Silva  ", "Ana Silva"},
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
	}
	for _, tt := range tests {
		got := CleanString(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("CleanString(%q) = %q, want nil", tt.in, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("CleanString(%q) = %v, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"70", 70, true},
		{" 70 ", 70, true},
		{"5.8", 5.8, true},
		{"5,8", 5.8, true}, // decimal comma
		{"-3", -3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
	}
	for _, tt := range tests {
		got := ParseNumber(tt.in)
		if !tt.valid {
			if got != nil {
				t.Errorf("ParseNumber(%q) = %v, want nil", tt.in, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
