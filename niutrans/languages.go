package niutrans

import (
	"sort"
	"strings"
)

// languageLabels maps the language codes the tool documents to their
// English labels. The remote API accepts more; this set backs the
// parameter help text shown to users.
var languageLabels = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"th": "Thai",
	"tr": "Turkish",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// SupportedLanguageCodes returns the documented language codes in
// sorted order.
func SupportedLanguageCodes() []string {
	codes := make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageLabel returns the English label for a code, or the code
// itself when it is not in the documented set.
func LanguageLabel(code string) string {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if label, ok := languageLabels[normalized]; ok {
		return label
	}
	return strings.TrimSpace(code)
}

// LanguageHint renders a "code(Label)" listing for parameter
// descriptions, for example "zh(Chinese), en(English)".
func LanguageHint(codes ...string) string {
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		normalized := strings.ToLower(strings.TrimSpace(code))
		if normalized == "" {
			continue
		}
		parts = append(parts, normalized+"("+LanguageLabel(normalized)+")")
	}
	return strings.Join(parts, ", ")
}
