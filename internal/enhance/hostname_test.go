package enhance

import "testing"

func TestHostnameFromURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "https url", input: "https://example.com/x", expected: "example.com"},
		{name: "url with port", input: "http://example.com:8080/path", expected: "example.com"},
		{name: "subdomain", input: "https://docs.go.dev/tour", expected: "docs.go.dev"},
		{name: "not a url", input: "not a url", expected: "unknown"},
		{name: "empty string", input: "", expected: "unknown"},
		{name: "missing scheme", input: "example.com/x", expected: "unknown"},
		{name: "control character", input: "https://exa\x7fmple.com", expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HostnameFromURL(tt.input); got != tt.expected {
				t.Errorf("HostnameFromURL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHostnameFromURLDeterministic(t *testing.T) {
	first := HostnameFromURL("https://example.com/x")
	for i := 0; i < 10; i++ {
		if got := HostnameFromURL("https://example.com/x"); got != first {
			t.Fatalf("expected deterministic result, got %q then %q", first, got)
		}
	}
}
