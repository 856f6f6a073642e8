package utils

import "testing"

func TestNormalizeICO(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short ico is zero padded", "123", "00000123"},
		{"full width unchanged", "12345678", "12345678"},
		{"whitespace trimmed before padding", " 45 ", "00000045"},
		{"overlong left alone", "123456789", "123456789"},
		{"non numeric still padded", "abc", "00000abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeICO(tt.in); got != tt.want {
				t.Errorf("NormalizeICO(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidICO(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00000123", true},
		{"12345678", true},
		{"1234567", false},
		{"123456789", false},
		{"not-a-number", false},
		{"1234567a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidICO(tt.in); got != tt.want {
			t.Errorf("IsValidICO(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
