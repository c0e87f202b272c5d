package language

import (
	"strings"
	"sync"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
	"github.com/pemistahl/lingua-go"
)

// Detector returns a ranked list of (iso 639-1 code, confidence) pairs.
// Never empty - entry 0 is treated as the document's primary language.
type Detector interface {
	DetectLanguages(text string) []docModel.LanguageScore
}

var (
	logger         *logger_i.Logger
	linguaInstance *linguaDetector
	once           sync.Once
)

type linguaDetector struct {
	detector lingua.LanguageDetector
}

// GetLinguaDetector builds the statistical models once - they are large
// and static for the process lifetime.
func GetLinguaDetector() Detector {
	once.Do(func() {
		logger = logger_i.NewLogger("LanguageDetection")
		linguaInstance = &linguaDetector{
			detector: lingua.NewLanguageDetectorBuilder().
				FromAllLanguages().
				Build(),
		}
		logger.Info("Language detector initialized")
	})
	return linguaInstance
}

func (d *linguaDetector) DetectLanguages(text string) []docModel.LanguageScore {
	values := d.detector.ComputeLanguageConfidenceValues(text)

	var scores []docModel.LanguageScore
	for _, v := range values {
		if v.Value() <= 0 {
			continue
		}
		scores = append(scores, docModel.LanguageScore{
			Code:       isoCode(v.Language()),
			Confidence: v.Value(),
		})
	}
	if len(scores) > 0 {
		return scores
	}

	//fall back to a single best guess with full confidence
	if lang, exists := d.detector.DetectLanguageOf(text); exists {
		logger.Debug("Confidence distribution empty, using best guess", "language", lang.String())
		return []docModel.LanguageScore{{Code: isoCode(lang), Confidence: 1.0}}
	}

	logger.Warn("Language detection failed entirely")
	return []docModel.LanguageScore{{Code: config.UnknownLanguage, Confidence: 0.0}}
}

func isoCode(lang lingua.Language) string {
	return strings.ToLower(lang.IsoCode639_1().String())
}
