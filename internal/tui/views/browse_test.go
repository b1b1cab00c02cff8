package views

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short string untouched", in: "Red Fort", max: 20, want: "Red Fort"},
		{name: "exact length untouched", in: "Agra", max: 4, want: "Agra"},
		{name: "ascii cut", in: "National Museum", max: 9, want: "National…"},
		{name: "zero width", in: "Agra", max: 0, want: ""},
		{name: "multi-byte name cut on rune boundary", in: "महाबलीपुरम मंदिर", max: 6, want: "महाबल…"},
		{name: "multi-byte name within limit", in: "ताजमहल", max: 10, want: "ताजमहल"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
