package sanitizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Priya Sharma  ",
			want:  "Priya Sharma",
		},
		{
			name:  "multiple spaces between words",
			input: "Priya    Sharma",
			want:  "Priya Sharma",
		},
		{
			name:  "tabs and newlines",
			input: "Priya\t\nSharma",
			want:  "Priya Sharma",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Spa™ ",
			want:  "Café & Spa™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("  line one\n\nline   two  ")
	want := "line one\n\nline   two"
	if got != want {
		t.Errorf("NormalizeText() = %q, want %q", got, want)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases host only",
			input: "  HTTPS://WWW.Instagram.COM/reel/AbC123/  ",
			want:  "https://www.instagram.com/reel/AbC123/",
		},
		{
			name:  "keeps query",
			input: "https://www.instagram.com/p/XYZ9/?igsh=abc",
			want:  "https://www.instagram.com/p/XYZ9/?igsh=abc",
		},
		{
			name:  "no scheme is returned trimmed",
			input: " instagram.com/reel/ABC ",
			want:  "instagram.com/reel/ABC",
		},
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.input); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
