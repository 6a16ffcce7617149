package service

import "testing"

func TestCleanLLMJSONResponseStripsFences(t *testing.T) {
	raw := "```json\n{\"summary\": \"ok\"}\n```"
	if got := CleanLLMJSONResponse(raw); got != `{"summary": "ok"}` {
		t.Fatalf("unexpected cleaned output: %q", got)
	}
}

func TestCleanLLMJSONResponseStripsBOM(t *testing.T) {
	raw := "\ufeff{\"a\":1}"
	if got := CleanLLMJSONResponse(raw); got != `{"a":1}` {
		t.Fatalf("unexpected cleaned output: %q", got)
	}
}

func TestCleanLLMJSONResponseEmpty(t *testing.T) {
	if got := CleanLLMJSONResponse("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"prefixed", `Sure! Here you go: {"a":1} hope it helps`, `{"a":1}`},
		{"nested", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"brace in string", `{"a":"}{"}`, `{"a":"}{"}`},
		{"escaped quote", `{"a":"say \"hi\""}`, `{"a":"say \"hi\""}`},
		{"no object", `just text`, ""},
		{"unbalanced", `{"a":1`, ""},
	}

	for _, tc := range cases {
		if got := extractFirstJSONObject(tc.input); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
