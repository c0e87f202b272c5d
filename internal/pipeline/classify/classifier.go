package classify

import (
	"context"
	"strings"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/llm"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("TypeClassification")

const typeLinePrefix = "Type:"

const classificationPrompt = `Please analyze this legal document and identify its specific type.
Focus on determining if it's one of these types:
- NDA (Non-Disclosure Agreement)
- Contract
- Agreement (specify type if possible)
- Power of Attorney
- Loan Agreement
- Share Purchase Agreement
- Partnership Agreement
- Service Agreement
- Employment Agreement
- Other (please specify)

Provide your response in this format:
Type: [document type]
Confidence: [HIGH/MEDIUM/LOW]
Reasoning: [brief explanation]

First 1000 characters of the document:
`

// DocumentType asks the model to classify the document and normalizes the
// free-text reply onto the closed label set. Never fails - any provider or
// parsing problem degrades to the "default" label.
func DocumentType(ctx context.Context, provider llm.Provider, text string) string {
	sample := text
	//character count, not bytes - never cut a rune in half
	if runes := []rune(sample); len(runes) > config.ClassificationSample {
		sample = string(runes[:config.ClassificationSample]) + "..."
	}

	reply, err := provider.Generate(ctx, classificationPrompt+"\n"+sample)
	if err != nil {
		logger.Error("Error detecting document type", "error", err)
		return config.DefaultDocType
	}

	return normalizeReply(reply)
}

// normalizeReply scans for the first "Type:" line and maps the answer onto
// a label. The nda check runs before agreement/contract on purpose: a
// reply like "NDA/Contract hybrid" must classify as nda.
func normalizeReply(reply string) string {
	for _, line := range strings.Split(reply, "\n") {
		if !strings.HasPrefix(line, typeLinePrefix) {
			continue
		}
		docType := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, typeLinePrefix)))
		switch {
		case strings.Contains(docType, "nda") || strings.Contains(docType, "non-disclosure"):
			return "nda"
		case strings.Contains(docType, "agreement"):
			return "agreement"
		case strings.Contains(docType, "contract"):
			return "contract"
		default:
			//open-ended category, kept verbatim
			return docType
		}
	}
	logger.Warn("Model reply had no Type line")
	return config.DefaultDocType
}
