package classify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/akolanti/LegalDocAPI/internal/config"
)

type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestNormalizeReply(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected string
	}{
		{
			name:     "Plain_NDA",
			reply:    "Type: NDA\nConfidence: HIGH\nReasoning: standard confidentiality terms",
			expected: "nda",
		},
		{
			name:     "NDA_Beats_Contract",
			reply:    "Type: This is an NDA/Contract hybrid\nConfidence: MEDIUM",
			expected: "nda",
		},
		{
			name:     "NonDisclosure_Spelled_Out",
			reply:    "Type: Non-Disclosure Agreement\nConfidence: HIGH",
			expected: "nda",
		},
		{
			name:     "Agreement_Beats_Contract",
			reply:    "Type: Service Agreement Contract\nConfidence: LOW",
			expected: "agreement",
		},
		{
			name:     "Plain_Contract",
			reply:    "Type: Employment Contract",
			expected: "contract",
		},
		{
			name:     "Open_Ended_Category_Kept_Verbatim",
			reply:    "Type: Power of Attorney\nConfidence: HIGH",
			expected: "power of attorney",
		},
		{
			name:     "No_Type_Line",
			reply:    "I believe this is a lease.\nConfidence: LOW",
			expected: config.DefaultDocType,
		},
		{
			name:     "Type_Line_Not_First",
			reply:    "Here is my assessment:\nType: Loan Agreement\nReasoning: mentions principal and interest",
			expected: "agreement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeReply(tt.reply); got != tt.expected {
				t.Errorf("normalizeReply() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestDocumentType_ProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("network down")}

	got := DocumentType(context.Background(), provider, "some legal text")
	if got != config.DefaultDocType {
		t.Errorf("DocumentType() = %q; want %q", got, config.DefaultDocType)
	}
}

func TestDocumentType_SampleTruncation(t *testing.T) {
	provider := &stubProvider{reply: "Type: Contract"}
	longText := strings.Repeat("a", config.ClassificationSample+500)

	DocumentType(context.Background(), provider, longText)

	if !strings.Contains(provider.lastPrompt, strings.Repeat("a", config.ClassificationSample)+"...") {
		t.Error("Prompt should contain the truncated sample with ellipsis marker")
	}
	if strings.Contains(provider.lastPrompt, strings.Repeat("a", config.ClassificationSample+1)) {
		t.Error("Prompt contains more than the sample limit of document text")
	}
}

func TestDocumentType_MultibyteSample(t *testing.T) {
	provider := &stubProvider{reply: "Type: Contract"}
	//multi-byte runes straddle the cut point when counting bytes
	longText := strings.Repeat("a", config.ClassificationSample-5) + strings.Repeat("é", 10)

	DocumentType(context.Background(), provider, longText)

	if !utf8.ValidString(provider.lastPrompt) {
		t.Fatal("Prompt sent to the model contains invalid UTF-8")
	}
	expected := strings.Repeat("a", config.ClassificationSample-5) + strings.Repeat("é", 5) + "..."
	if !strings.HasSuffix(provider.lastPrompt, expected) {
		t.Error("Sample should keep exactly the character limit of whole runes")
	}
}

func TestDocumentType_ShortTextUntouched(t *testing.T) {
	provider := &stubProvider{reply: "Type: Contract"}
	shortText := "short document body"

	DocumentType(context.Background(), provider, shortText)

	if !strings.HasSuffix(provider.lastPrompt, shortText) {
		t.Error("Short text should be appended unmodified, without an ellipsis")
	}
}
