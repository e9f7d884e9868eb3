package status

import "strings"

// formatMarker prefixes every two-character styling code in an MOTD
const formatMarker = '§'

// motdText unwraps a raw ping description into its plain text form.
// Descriptions arrive either as a plain string or as a structured
// {"text": ...} object.
func motdText(description any) string {
	switch desc := description.(type) {
	case string:
		return desc
	case map[string]any:
		if text, ok := desc["text"].(string); ok {
			return text
		}
	}

	return ""
}

// stripFormatting removes every marker-plus-code pair from s. Stripping
// an already stripped string returns it unchanged.
func stripFormatting(s string) string {
	if !strings.ContainsRune(s, formatMarker) {
		return s
	}

	b := strings.Builder{}
	skip := false

	for _, r := range s {
		if skip {
			skip = false
			continue
		}

		if r == formatMarker {
			skip = true
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
