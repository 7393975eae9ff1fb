package plugin

import (
	"encoding/json"
	"testing"
)

func TestValidateTranslateTextPayload_AppliesTargetDefault(t *testing.T) {
	t.Parallel()

	params, err := validateTranslateTextPayload(json.RawMessage(`{"text":"hello"}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if params.Text != "hello" {
		t.Errorf("Text = %q, want %q", params.Text, "hello")
	}
	if params.FromLanguage != "" {
		t.Errorf("FromLanguage = %q, want empty", params.FromLanguage)
	}
	if params.ToLanguage != "en" {
		t.Errorf("ToLanguage = %q, want default en", params.ToLanguage)
	}
}

func TestValidateTranslateTextPayload_KeepsExplicitLanguages(t *testing.T) {
	t.Parallel()

	params, err := validateTranslateTextPayload(json.RawMessage(`{"text":"hi","from_language":"en","to_language":"zh"}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if params.FromLanguage != "en" || params.ToLanguage != "zh" {
		t.Errorf("languages = %q/%q, want en/zh", params.FromLanguage, params.ToLanguage)
	}
}

func TestValidateTranslateTextPayload_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
	}{
		{name: "missing text", payload: `{"to_language":"zh"}`},
		{name: "wrong text type", payload: `{"text":42}`},
		{name: "unknown property", payload: `{"text":"hi","mode":"fast"}`},
		{name: "not an object", payload: `"hi"`},
		{name: "empty payload", payload: ``},
		{name: "trailing content", payload: `{"text":"hi"} {}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := validateTranslateTextPayload(json.RawMessage(tc.payload)); err == nil {
				t.Fatalf("payload %q was accepted", tc.payload)
			}
		})
	}
}
