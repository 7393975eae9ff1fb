package niutrans

// Credentials holds the NiuTrans API credentials issued in the
// "Console -> API Applications" page. Both fields are required for
// any live call and are never mutated after construction.
type Credentials struct {
	AppID  string
	APIKey string
}

// TranslateRequest describes one translation request.
type TranslateRequest struct {
	Text       string
	SourceLang string // ISO 639-1 (for example: "zh", "en"); empty means auto-detect
	TargetLang string
}

// Result is the structured outcome of a successful translation.
type Result struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	OriginalText   string `json:"original_text"`
	ErrorCode      string `json:"error_code"`
	ErrorMsg       string `json:"error_msg"`
}

// apiResponse mirrors the JSON body of /v2/text/translate. The "from"
// field is the only one the API guarantees; its absence marks a
// malformed response.
type apiResponse struct {
	From      *string `json:"from"`
	To        string  `json:"to"`
	TgtText   string  `json:"tgtText"`
	SrcText   string  `json:"srcText"`
	ErrorCode string  `json:"errorCode"`
	ErrorMsg  string  `json:"errorMsg"`
}
