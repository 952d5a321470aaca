package common

import (
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain URL untouched",
			in:   "https://example.com/page",
			want: "https://example.com/page",
		},
		{
			name: "whitespace trimmed",
			in:   "  https://example.com  ",
			want: "https://example.com",
		},
		{
			name: "trailing comma removed",
			in:   "https://example.com/page,",
			want: "https://example.com/page",
		},
		{
			name: "markdown link extracted",
			in:   "[docs](https://example.com/docs)",
			want: "https://example.com/docs",
		},
		{
			name: "wrapping parens removed",
			in:   "(https://example.com)",
			want: "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeAndValidateURLs(t *testing.T) {
	urls := []string{
		"https://example.com/good",
		"ftp://example.com/bad-scheme",
		"https://example.com/trailing,",
		"not a url",
		"",
	}

	sanitized, invalid := SanitizeAndValidateURLs(urls)

	if len(sanitized) != 2 {
		t.Errorf("got %d sanitized URLs, want 2: %v", len(sanitized), sanitized)
	}
	if len(invalid) != 3 {
		t.Errorf("got %d invalid URLs, want 3: %v", len(invalid), invalid)
	}
	if sanitized[1] != "https://example.com/trailing" {
		t.Errorf("sanitized[1] = %q, want trailing comma removed", sanitized[1])
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("content"))
	b := ContentHash([]byte("content"))
	c := ContentHash([]byte("different"))

	if a != b {
		t.Error("same input should hash identically")
	}
	if a == c {
		t.Error("different inputs should hash differently")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
