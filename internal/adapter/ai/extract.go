// Package ai turns raw model text into validated, typed tool responses.
// Models wrap JSON in prose or markdown fences often enough that extraction
// has to try several strategies before giving up.
package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/aviniti/ai-tools-api/internal/domain"
)

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls a JSON object out of raw model text. It tries, in order,
// a direct parse of the whole string, the contents of a fenced code block,
// and the first balanced {...} substring. Failure of all three wraps
// domain.ErrMalformedOutput.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrMalformedOutput)
	}

	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	if m := jsonFenceRe.FindStringSubmatch(trimmed); m != nil {
		fenced := strings.TrimSpace(m[1])
		if json.Valid([]byte(fenced)) {
			return json.RawMessage(fenced), nil
		}
	}

	if obj := firstBalancedObject(trimmed); obj != "" && json.Valid([]byte(obj)) {
		return json.RawMessage(obj), nil
	}

	return nil, fmt.Errorf("%w: no parseable JSON object found", domain.ErrMalformedOutput)
}

// firstBalancedObject returns the first {...} substring with balanced braces,
// ignoring braces inside JSON strings.
func firstBalancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
