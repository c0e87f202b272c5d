package docModel

// LanguageScore is one entry of the detector's ranked output.
// Confidence is in [0.0, 1.0]; the fallback single-guess path reports 1.0
// and the total-failure path reports ("unknown", 0.0).
type LanguageScore struct {
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
}

// Record is the unit produced per successfully extracted document.
// Never mutated after creation.
type Record struct {
	FilePath  string          `json:"file_path"`
	DocType   string          `json:"doc_type"`
	Languages []LanguageScore `json:"languages"`
	Analysis  string          `json:"analysis"`
}

// PrimaryLanguage is the code the analysis prompt is selected for.
func (r Record) PrimaryLanguage() string {
	if len(r.Languages) == 0 {
		return "unknown"
	}
	return r.Languages[0].Code
}

type DocType string

var (
	PDF  DocType = "PDF"
	DOCX DocType = "DOCX"
	ERR  DocType = "ERROR"
)
