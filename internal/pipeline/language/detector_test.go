package language

import (
	"testing"

	"github.com/akolanti/LegalDocAPI/internal/config"
)

const englishSample = `This Agreement is entered into by and between the parties named below.
The receiving party shall hold all confidential information in strict confidence
and shall not disclose it to any third party without prior written consent.`

func TestDetectLanguages_NeverEmpty(t *testing.T) {
	d := GetLinguaDetector()

	inputs := []string{
		englishSample,
		"Pihak penerima wajib menjaga kerahasiaan seluruh informasi rahasia.",
		"12345 67890 !!!", //nothing statistically detectable
		"",
	}

	for _, input := range inputs {
		scores := d.DetectLanguages(input)
		if len(scores) == 0 {
			t.Errorf("DetectLanguages(%q) returned empty list", input)
		}
	}
}

func TestDetectLanguages_SortedByConfidence(t *testing.T) {
	d := GetLinguaDetector()

	scores := d.DetectLanguages(englishSample)
	for i := 1; i < len(scores); i++ {
		if scores[i].Confidence > scores[i-1].Confidence {
			t.Fatalf("Scores not sorted descending at index %d: %v > %v", i, scores[i].Confidence, scores[i-1].Confidence)
		}
	}
	if scores[0].Confidence < scores[len(scores)-1].Confidence {
		t.Error("First entry should carry the maximum confidence")
	}
}

func TestDetectLanguages_EnglishPrimary(t *testing.T) {
	d := GetLinguaDetector()

	scores := d.DetectLanguages(englishSample)
	if scores[0].Code != "en" {
		t.Errorf("Primary language got %q, want en", scores[0].Code)
	}
	if scores[0].Confidence <= 0 || scores[0].Confidence > 1 {
		t.Errorf("Confidence out of range: %v", scores[0].Confidence)
	}
}

func TestDetectLanguages_UnknownFallback(t *testing.T) {
	d := GetLinguaDetector()

	scores := d.DetectLanguages("")
	if scores[0].Code != config.UnknownLanguage || scores[0].Confidence != 0.0 {
		t.Errorf("Expected (%s, 0.0) for undetectable input, got %+v", config.UnknownLanguage, scores[0])
	}
}
