package analyze

import (
	"context"
	"fmt"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/llm"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/prompts"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("Analysis")

// Document runs the type/language specific analysis call. Never raises -
// a failed call becomes an error string in the record so one bad document
// cannot abort the batch.
func Document(ctx context.Context, provider llm.Provider, text string, docType string, lang string) string {
	template := prompts.GetSummarizationPrompt(docType, lang)

	//the limit counts characters, not bytes - a byte slice could split a rune
	if runes := []rune(text); len(runes) > config.AnalysisCharLimit {
		logger.Debug("Truncating document text", "original length", len(runes))
		text = string(runes[:config.AnalysisCharLimit]) + config.TruncationMarker
	}

	fullPrompt := fmt.Sprintf("%s\n\nDocument text:\n%s", template, text)
	analysis, err := provider.Generate(ctx, fullPrompt)
	if err != nil {
		logger.Error("Analysis call failed", "docType", docType, "error", err)
		return fmt.Sprintf("Error using Gemini API: %s", err.Error())
	}
	return analysis
}
