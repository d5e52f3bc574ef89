// Package jsonutil extracts JSON payloads from model responses that may be
// wrapped in markdown code fences or surrounded by prose.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripMarkdownFences removes ```json ... ``` or ``` ... ``` wrapping from text.
// Returns the content between the fences, or the original text if no fences are found.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}

	startIdx := 1 // skip the opening ``` line
	endIdx := len(lines) - 1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			endIdx = i
			break
		}
	}

	return strings.Join(lines[startIdx:endIdx], "\n")
}

// ExtractJSON returns the JSON object or array embedded in text. It finds the
// first { or [ and pairs it with the last matching } or ], so leading and
// trailing prose around the payload is tolerated.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")
	if objIdx == -1 && arrIdx == -1 {
		return "", fmt.Errorf("no JSON content found")
	}

	var startIdx int
	var endChar string
	if arrIdx == -1 || (objIdx != -1 && objIdx <= arrIdx) {
		startIdx = objIdx
		endChar = "}"
	} else {
		startIdx = arrIdx
		endChar = "]"
	}

	endIdx := strings.LastIndex(text, endChar)
	if endIdx == -1 || endIdx < startIdx {
		return "", fmt.Errorf("unterminated JSON content")
	}

	return text[startIdx : endIdx+1], nil
}

// ParseInto strips fences from a model response, extracts the embedded JSON,
// and unmarshals it into out.
func ParseInto(text string, out interface{}) error {
	cleaned := StripMarkdownFences(text)
	payload, err := ExtractJSON(cleaned)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("unmarshal model response: %w", err)
	}
	return nil
}
