package detect

import (
	"regexp"
	"strings"
)

// Safety labels produced by the guard model.
const (
	LabelSafe          = "Safe"
	LabelUnsafe        = "Unsafe"
	LabelControversial = "Controversial"
	LabelUnknown       = "Unknown"
)

// Regex patterns for Qwen3Guard-Gen response parsing.
var (
	safetyPattern   = regexp.MustCompile(`(?i)Safety:\s*(Safe|Unsafe|Controversial)`)
	categoryPattern = regexp.MustCompile(`(Violent|Non-violent Illegal Acts|Sexual Content or Sexual Acts|PII|Suicide & Self-Harm|Unethical Acts|Politically Sensitive Topics|Copyright Violation|Jailbreak|None)`)
)

// ParseGuardOutput parses the raw guard model completion, e.g.
//
//	Safety: Unsafe
//	Categories: Violent
//
// into a TextResult. Output that cannot be parsed maps to LabelUnknown and is
// not flagged, so an off-format completion never blocks content.
func ParseGuardOutput(content string) TextResult {
	result := TextResult{SafetyLabel: LabelUnknown}

	m := safetyPattern.FindStringSubmatch(content)
	if len(m) >= 2 {
		switch strings.ToLower(m[1]) {
		case "unsafe":
			result.SafetyLabel = LabelUnsafe
			result.Flagged = true
		case "controversial":
			result.SafetyLabel = LabelControversial
		case "safe":
			result.SafetyLabel = LabelSafe
		}
	}

	for _, cat := range categoryPattern.FindAllString(content, -1) {
		if !strings.EqualFold(cat, "None") {
			result.Categories = append(result.Categories, cat)
		}
	}
	return result
}
