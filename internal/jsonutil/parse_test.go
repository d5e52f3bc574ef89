package jsonutil

import "testing"

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: "{\"a\": 1}",
		},
		{
			name: "bare fence",
			in:   "```\n[1, 2]\n```",
			want: "[1, 2]",
		},
		{
			name: "no fence",
			in:   "{\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "too short to be fenced",
			in:   "```",
			want: "```",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdownFences(tt.in); got != tt.want {
				t.Errorf("StripMarkdownFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	got, err := ExtractJSON("Here is the result: {\"pattern\": \"floral\"} hope that helps")
	if err != nil {
		t.Fatalf("ExtractJSON returned error: %v", err)
	}
	if got != "{\"pattern\": \"floral\"}" {
		t.Errorf("ExtractJSON = %q, want %q", got, "{\"pattern\": \"floral\"}")
	}

	if _, err := ExtractJSON("no json here"); err == nil {
		t.Error("ExtractJSON on prose-only input should return an error")
	}
}

func TestParseInto(t *testing.T) {
	var out struct {
		Pattern string `json:"pattern"`
	}
	text := "```json\n{\"pattern\": \"striped\"}\n```"
	if err := ParseInto(text, &out); err != nil {
		t.Fatalf("ParseInto returned error: %v", err)
	}
	if out.Pattern != "striped" {
		t.Errorf("out.Pattern = %q, want %q", out.Pattern, "striped")
	}
}
