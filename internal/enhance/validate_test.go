package enhance

import "testing"

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Classification
	}{
		{name: "well formed", body: `{"success":true,"enhanced_resources":[{"url":"https://a.com"}]}`, expected: WellFormed},
		{name: "empty list is well formed", body: `{"enhanced_resources":[]}`, expected: WellFormed},
		{name: "elements may be any shape", body: `{"enhanced_resources":["garbage",42]}`, expected: WellFormed},
		{name: "not json", body: `<html>Internal Server Error</html>`, expected: ParseFailure},
		{name: "empty body", body: ``, expected: ParseFailure},
		{name: "truncated json", body: `{"enhanced_resources":[`, expected: ParseFailure},
		{name: "missing list", body: `{"success":true}`, expected: MissingResourceList},
		{name: "null body", body: `null`, expected: MissingResourceList},
		{name: "top-level array", body: `[1,2,3]`, expected: MissingResourceList},
		{name: "list is an object", body: `{"enhanced_resources":{"a":1}}`, expected: NotAnArray},
		{name: "list is null", body: `{"enhanced_resources":null}`, expected: NotAnArray},
		{name: "list is a string", body: `{"enhanced_resources":"nope"}`, expected: NotAnArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := classifyResponse([]byte(tt.body))
			if got != tt.expected {
				t.Errorf("classifyResponse(%q) = %v, want %v", tt.body, got, tt.expected)
			}
		})
	}
}

func TestEnvelopeSuccessDefaultsTrue(t *testing.T) {
	env, c := classifyResponse([]byte(`{"enhanced_resources":[]}`))
	if c != WellFormed {
		t.Fatalf("classification = %v, want WellFormed", c)
	}
	if !env.Success() {
		t.Error("success should default to true when absent")
	}

	env, _ = classifyResponse([]byte(`{"success":false,"enhanced_resources":[]}`))
	if env.Success() {
		t.Error("declared success=false must be preserved")
	}
}

func TestClassificationCause(t *testing.T) {
	if ParseFailure.Cause() != "JSON parse error" {
		t.Errorf("ParseFailure cause = %q", ParseFailure.Cause())
	}
	if MissingResourceList.Cause() != "Unexpected response structure" {
		t.Errorf("MissingResourceList cause = %q", MissingResourceList.Cause())
	}
	if NotAnArray.Cause() != "Unexpected response structure" {
		t.Errorf("NotAnArray cause = %q", NotAnArray.Cause())
	}
}
