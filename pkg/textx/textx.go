// Package textx provides small text utilities used across the project.
package textx

import (
	"regexp"
	"strings"
	"unicode"
)

// Lang is a detected input language.
type Lang string

// Supported languages.
const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```.*?```")
	danglingFence = regexp.MustCompile("```")
	// Bracketed role markers used in prompt-injection attempts.
	roleMarkerRe = regexp.MustCompile(`(?i)\[(SYSTEM|INSTRUCTIONS?|IGNORE|ASSISTANT|USER)\]`)
	// Pseudo-XML tags that could impersonate prompt structure.
	xmlMarkerRe = regexp.MustCompile(`(?i)</?(system|instructions?|prompt)>`)
)

// StripControl removes control characters except tab/newline/CR and trims spaces.
func StripControl(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Sanitize normalizes untrusted free text before it reaches a prompt or a
// log line. It strips fenced code blocks and role markers that could
// override downstream instructions, escapes angle brackets and truncates to
// maxLength runes. This is a prompt-injection defense, not HTML
// sanitization; output is never rendered as raw HTML.
func Sanitize(s string, maxLength int) string {
	s = StripControl(s)
	s = fencedBlockRe.ReplaceAllString(s, " ")
	s = danglingFence.ReplaceAllString(s, "")
	s = roleMarkerRe.ReplaceAllString(s, "")
	s = xmlMarkerRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.TrimSpace(s)
	if maxLength > 0 {
		if r := []rune(s); len(r) > maxLength {
			s = string(r[:maxLength])
		}
	}
	return s
}

// DetectLanguage classifies text as Arabic when Arabic letters make up more
// than 30% of all alphabetic runes, English otherwise. The response language
// must match what the user actually typed, so this wins over any
// client-supplied locale flag. Pure and deterministic.
func DetectLanguage(s string) Lang {
	var arabic, total int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Arabic, r) {
			arabic++
		}
	}
	if total == 0 {
		return LangEnglish
	}
	if float64(arabic)/float64(total) > 0.30 {
		return LangArabic
	}
	return LangEnglish
}
