package prompts

import "github.com/akolanti/LegalDocAPI/internal/config"

// Static (document type x language) template table. Read-only for the
// process lifetime; GetSummarizationPrompt is total over arbitrary input.
var summarizationPrompts = map[string]map[string]string{
	"nda": {
		"en": `Please analyze this Non-Disclosure Agreement and provide:
1. Key parties involved
2. Scope of confidentiality
3. Duration of the agreement
4. Key obligations and restrictions
5. Notable exceptions or special clauses`,
		"id": `Mohon analisis Perjanjian Kerahasiaan ini dan berikan:
1. Pihak-pihak utama yang terlibat
2. Ruang lingkup kerahasiaan
3. Durasi perjanjian
4. Kewajiban dan pembatasan utama
5. Pengecualian atau klausul khusus yang penting`,
	},
	"contract": {
		"en": `Please analyze this Contract and provide:
1. Type of contract and main purpose
2. Key parties and their roles
3. Main terms and conditions
4. Key obligations of each party
5. Important dates and deadlines
6. Notable special provisions`,
		"id": `Mohon analisis Kontrak ini dan berikan:
1. Jenis kontrak dan tujuan utama
2. Pihak-pihak utama dan peran mereka
3. Syarat dan ketentuan utama
4. Kewajiban utama setiap pihak
5. Tanggal dan tenggat waktu penting
6. Ketentuan khusus yang penting`,
	},
	"agreement": {
		"en": `Please analyze this Agreement and provide:
1. Type and purpose of the agreement
2. Parties involved and their roles
3. Key terms and conditions
4. Rights and obligations
5. Duration and termination conditions
6. Special provisions or notable clauses`,
		"id": `Mohon analisis Perjanjian ini dan berikan:
1. Jenis dan tujuan perjanjian
2. Pihak-pihak yang terlibat dan peran mereka
3. Syarat dan ketentuan utama
4. Hak dan kewajiban
5. Durasi dan kondisi pengakhiran
6. Ketentuan khusus atau klausul penting`,
	},
	config.DefaultDocType: {
		"en": `Please analyze this legal document and provide:
1. Document type and purpose
2. Key parties involved
3. Main provisions and terms
4. Important dates or deadlines
5. Notable special clauses or conditions`,
		"id": `Mohon analisis dokumen hukum ini dan berikan:
1. Jenis dan tujuan dokumen
2. Pihak-pihak utama yang terlibat
3. Ketentuan dan syarat utama
4. Tanggal atau tenggat waktu penting
5. Klausul atau kondisi khusus yang penting`,
	},
}

// GetSummarizationPrompt picks the analysis template for a document type
// and language. Unknown types fall back to the generic row, unsupported
// languages to English.
func GetSummarizationPrompt(docType string, language string) string {
	if language != "en" && language != "id" {
		language = config.DefaultLanguage
	}
	row, ok := summarizationPrompts[docType]
	if !ok {
		row = summarizationPrompts[config.DefaultDocType]
	}
	return row[language]
}
