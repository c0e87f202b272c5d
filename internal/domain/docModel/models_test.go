package docModel

import "testing"

func TestPrimaryLanguage(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{
			name: "Highest_Confidence_First",
			record: Record{Languages: []LanguageScore{
				{Code: "id", Confidence: 0.92},
				{Code: "en", Confidence: 0.08},
			}},
			expected: "id",
		},
		{
			name:     "Single_Entry",
			record:   Record{Languages: []LanguageScore{{Code: "en", Confidence: 1.0}}},
			expected: "en",
		},
		{
			name:     "No_Entries",
			record:   Record{},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.PrimaryLanguage(); got != tt.expected {
				t.Errorf("PrimaryLanguage() = %q; want %q", got, tt.expected)
			}
		})
	}
}
