package pipeline_test

import (
	"context"
	"strings"

	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
)

// MockExtractor implements extract.Extractor
type MockExtractor struct {
	// Control field to simulate different behaviors
	OnExtract func(path string, docType docModel.DocType) (string, error)
}

func (m *MockExtractor) ExtractText(path string, docType docModel.DocType) (string, error) {
	if m.OnExtract != nil {
		return m.OnExtract(path, docType)
	}
	return "default extracted text", nil
}

// MockDetector implements language.Detector
type MockDetector struct {
	OnDetect func(text string) []docModel.LanguageScore
}

func (m *MockDetector) DetectLanguages(text string) []docModel.LanguageScore {
	if m.OnDetect != nil {
		return m.OnDetect(text)
	}
	return []docModel.LanguageScore{{Code: "en", Confidence: 0.99}}
}

// MockLLM implements llm.Provider. Classification and analysis prompts are
// told apart by the Type/Confidence/Reasoning instruction block.
type MockLLM struct {
	OnGenerate func(ctx context.Context, prompt string) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	if strings.Contains(prompt, "Type: [document type]") {
		return "Type: Contract\nConfidence: HIGH\nReasoning: mock", nil
	}
	return "mocked analysis", nil
}
