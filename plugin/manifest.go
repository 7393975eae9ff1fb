package plugin

import (
	"fmt"

	"github.com/langgenius/niutrans-plugin/niutrans"
)

// ToolTranslateText is the name the translate tool registers under.
const ToolTranslateText = "translate_text"

// MetaInfo describes the plugin to the host framework.
type MetaInfo struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
}

// CredentialField is declarative metadata for one credential the host
// collects from the user. The core only ever reads the raw values.
type CredentialField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Help        string `json:"help"`
	Placeholder string `json:"placeholder"`
	Secret      bool   `json:"secret"`
	Required    bool   `json:"required"`
}

// ParamField is declarative metadata for one tool parameter.
type ParamField struct {
	Name           string `json:"name"`
	Label          string `json:"label"`
	Description    string `json:"description"`
	LLMDescription string `json:"llm_description"`
	Type           string `json:"type"`
	Required       bool   `json:"required"`
	Default        string `json:"default,omitempty"`
}

// ToolDefinition describes one tool the plugin contributes.
type ToolDefinition struct {
	Name        string       `json:"name"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Params      []ParamField `json:"params"`
}

// Meta returns the plugin metadata.
func Meta() MetaInfo {
	return MetaInfo{
		Name:        "niutrans",
		Author:      "langgenius",
		Description: "Text translation using NiuTrans API",
		Version:     "0.1.0",
		Label:       "NiuTrans",
		Icon:        "icon.svg",
	}
}

// CredentialFields returns the credential metadata consumed by the
// host's credential-collection UI.
func CredentialFields() []CredentialField {
	return []CredentialField{
		{
			Name:        "app_id",
			Label:       "App ID",
			Help:        "Your unique application identifier, view in 'Console->API Applications'",
			Placeholder: "Please enter your App ID",
			Secret:      true,
			Required:    true,
		},
		{
			Name:        "apikey",
			Label:       "API Key",
			Help:        "Your API key, view in 'Console->API Applications'",
			Placeholder: "Please enter your API Key",
			Secret:      true,
			Required:    true,
		},
	}
}

// Tools returns the tool definitions the plugin contributes.
func Tools() []ToolDefinition {
	langHint := niutrans.LanguageHint("zh", "en", "ja", "ko")
	return []ToolDefinition{
		{
			Name:        ToolTranslateText,
			Label:       "Translate Text",
			Description: "Translate text from one language to another",
			Params: []ParamField{
				{
					Name:           "text",
					Label:          "Text to Translate",
					Description:    "The text content to be translated",
					LLMDescription: "The text content to be translated",
					Type:           "string",
					Required:       true,
				},
				{
					Name:           "from_language",
					Label:          "Source Language",
					Description:    fmt.Sprintf("Source language code, e.g.: %s, etc.", langHint),
					LLMDescription: fmt.Sprintf("Source language code, e.g.: %s, etc. If not provided, the system will auto-detect", langHint),
					Type:           "string",
					Required:       false,
				},
				{
					Name:           "to_language",
					Label:          "Target Language",
					Description:    fmt.Sprintf("Target language code, e.g.: %s, etc.", langHint),
					LLMDescription: fmt.Sprintf("Target language code, e.g.: %s, etc.", langHint),
					Type:           "string",
					Required:       true,
					Default:        niutrans.DefaultTargetLang,
				},
			},
		},
	}
}
