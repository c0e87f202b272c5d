package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
	"github.com/akolanti/LegalDocAPI/internal/pipeline"
)

func newTestTree(t *testing.T, names []string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		full := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(full), 0750); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(full, []byte("placeholder"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return root
}

func TestProcessDirectory_FileFiltering(t *testing.T) {
	// extraction is mocked, so only names and extensions matter here
	root := newTestTree(t, []string{
		"contracts/service_agreement.pdf",
		"contracts/nda.DOCX",
		"contracts/~$nda.docx",
		"notes/readme.txt",
		"notes/image.png",
	})

	s := pipeline.NewService(&MockExtractor{}, &MockDetector{}, &MockLLM{})

	records, err := s.ProcessDirectory(context.Background(), root)
	if err != nil {
		t.Fatalf("ProcessDirectory failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records (pdf + docx), got %d", len(records))
	}
	for _, r := range records {
		if strings.Contains(r.FilePath, "~$") {
			t.Errorf("Temp lock file produced a record: %s", r.FilePath)
		}
	}
}

func TestProcessDirectory_ExtractionFailureSkipsFile(t *testing.T) {
	root := newTestTree(t, []string{
		"readable.pdf",
		"encrypted.pdf",
	})

	mExtract := &MockExtractor{
		OnExtract: func(path string, docType docModel.DocType) (string, error) {
			if strings.Contains(path, "encrypted") {
				return "", errors.New("pdf is encrypted")
			}
			return "some legal text", nil
		},
	}

	s := pipeline.NewService(mExtract, &MockDetector{}, &MockLLM{})

	records, err := s.ProcessDirectory(context.Background(), root)
	if err != nil {
		t.Fatalf("ProcessDirectory failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Expected exactly 1 record, got %d", len(records))
	}
	if !strings.Contains(records[0].FilePath, "readable.pdf") {
		t.Errorf("Wrong file produced the record: %s", records[0].FilePath)
	}
}

func TestProcessDirectory_UnreadableRoot(t *testing.T) {
	s := pipeline.NewService(&MockExtractor{}, &MockDetector{}, &MockLLM{})

	_, err := s.ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("Expected error for unreadable root, got nil")
	}
}

func TestProcessBatch_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		setupMocks      func(e *MockExtractor, d *MockDetector, l *MockLLM)
		expectedType    string
		expectedAnalyze string
	}{
		{
			name:            "Success_Full_Flow",
			setupMocks:      func(e *MockExtractor, d *MockDetector, l *MockLLM) {},
			expectedType:    "contract",
			expectedAnalyze: "mocked analysis",
		},
		{
			name: "Classifier_Failure_Degrades_To_Default",
			setupMocks: func(e *MockExtractor, d *MockDetector, l *MockLLM) {
				l.OnGenerate = func(ctx context.Context, prompt string) (string, error) {
					if strings.Contains(prompt, "Type: [document type]") {
						return "", errors.New("quota exceeded")
					}
					return "analysis anyway", nil
				}
			},
			expectedType:    config.DefaultDocType,
			expectedAnalyze: "analysis anyway",
		},
		{
			name: "Analysis_Failure_Becomes_Error_String",
			setupMocks: func(e *MockExtractor, d *MockDetector, l *MockLLM) {
				l.OnGenerate = func(ctx context.Context, prompt string) (string, error) {
					if strings.Contains(prompt, "Type: [document type]") {
						return "Type: NDA", nil
					}
					return "", errors.New("provider down")
				}
			},
			expectedType:    "nda",
			expectedAnalyze: "Error using Gemini API: provider down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestTree(t, []string{"doc.pdf"})

			mExtract := &MockExtractor{}
			mDetect := &MockDetector{}
			mLLM := &MockLLM{}
			tt.setupMocks(mExtract, mDetect, mLLM)

			s := pipeline.NewService(mExtract, mDetect, mLLM)

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
			job := jobModel.Job{
				Id:      "test-job",
				JobType: jobModel.JobTypeBatch,
				JobPayload: jobModel.JobPayload{
					RootPath: root,
				},
			}

			result := s.ProcessBatch(ctx, job)

			if result.Status == jobModel.JobStatusError {
				t.Fatalf("Batch errored: %+v", result.Error)
			}
			if len(result.JobPayload.Records) != 1 {
				t.Fatalf("Expected 1 record, got %d", len(result.JobPayload.Records))
			}

			record := result.JobPayload.Records[0]
			if record.DocType != tt.expectedType {
				t.Errorf("DocType got %s, want %s", record.DocType, tt.expectedType)
			}
			if record.Analysis != tt.expectedAnalyze {
				t.Errorf("Analysis got %q, want %q", record.Analysis, tt.expectedAnalyze)
			}
			if len(record.Languages) == 0 {
				t.Error("Record has no language entries")
			}
		})
	}
}

func TestProcessBatch_PrimaryLanguageSelectsTemplate(t *testing.T) {
	root := newTestTree(t, []string{"kontrak.pdf"})

	mDetect := &MockDetector{
		OnDetect: func(text string) []docModel.LanguageScore {
			return []docModel.LanguageScore{
				{Code: "id", Confidence: 0.92},
				{Code: "en", Confidence: 0.08},
			}
		},
	}
	var analysisPrompt string
	mLLM := &MockLLM{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "Type: [document type]") {
				return "Type: NDA", nil
			}
			analysisPrompt = prompt
			return "ok", nil
		},
	}

	s := pipeline.NewService(&MockExtractor{}, mDetect, mLLM)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	job := jobModel.Job{
		Id:         "lang-job",
		JobType:    jobModel.JobTypeBatch,
		JobPayload: jobModel.JobPayload{RootPath: root},
	}

	result := s.ProcessBatch(ctx, job)
	if result.Status == jobModel.JobStatusError {
		t.Fatalf("Batch errored: %+v", result.Error)
	}

	//the top-ranked language must drive the template choice
	if !strings.Contains(analysisPrompt, "Perjanjian Kerahasiaan") {
		t.Error("Analysis prompt should use the Indonesian NDA template")
	}
}

func TestProcessBatch_UnreadableRoot(t *testing.T) {
	s := pipeline.NewService(&MockExtractor{}, &MockDetector{}, &MockLLM{})

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	job := jobModel.Job{
		Id:         "bad-root",
		JobType:    jobModel.JobTypeBatch,
		JobPayload: jobModel.JobPayload{RootPath: "/definitely/not/here"},
	}

	result := s.ProcessBatch(ctx, job)
	if result.Status != jobModel.JobStatusError {
		t.Errorf("Status got %v, want %v", result.Status, jobModel.JobStatusError)
	}
}

func TestProcessDocument_Scenarios(t *testing.T) {
	t.Run("Success_Removes_Upload", func(t *testing.T) {
		dir := t.TempDir()
		docPath := filepath.Join(dir, "upload.docx")
		if err := os.WriteFile(docPath, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}

		s := pipeline.NewService(&MockExtractor{}, &MockDetector{}, &MockLLM{})

		ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "doc-trace")
		job := jobModel.Job{
			Id:      "doc-job",
			JobType: jobModel.JobTypeDocument,
			JobPayload: jobModel.JobPayload{
				DocumentName: "upload.docx",
				DocumentPath: docPath,
			},
		}

		result := s.ProcessDocument(ctx, job)

		if result.Status == jobModel.JobStatusError {
			t.Fatalf("Document job errored: %+v", result.Error)
		}
		if len(result.JobPayload.Records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(result.JobPayload.Records))
		}
		if _, err := os.Stat(docPath); !os.IsNotExist(err) {
			t.Error("Uploaded temp file was not removed after processing")
		}
	})

	t.Run("Unsupported_Type", func(t *testing.T) {
		s := pipeline.NewService(&MockExtractor{}, &MockDetector{}, &MockLLM{})

		ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "doc-trace")
		job := jobModel.Job{
			Id:         "doc-job-2",
			JobType:    jobModel.JobTypeDocument,
			JobPayload: jobModel.JobPayload{DocumentPath: "upload.png"},
		}

		result := s.ProcessDocument(ctx, job)
		if result.Status != jobModel.JobStatusError {
			t.Errorf("Status got %v, want %v", result.Status, jobModel.JobStatusError)
		}
	})

	t.Run("Extraction_Failure", func(t *testing.T) {
		dir := t.TempDir()
		docPath := filepath.Join(dir, "broken.pdf")
		if err := os.WriteFile(docPath, []byte("not a pdf"), 0644); err != nil {
			t.Fatal(err)
		}

		mExtract := &MockExtractor{
			OnExtract: func(path string, docType docModel.DocType) (string, error) {
				return "", errors.New("failed to open pdf")
			},
		}
		s := pipeline.NewService(mExtract, &MockDetector{}, &MockLLM{})

		ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "doc-trace")
		job := jobModel.Job{
			Id:         "doc-job-3",
			JobType:    jobModel.JobTypeDocument,
			JobPayload: jobModel.JobPayload{DocumentPath: docPath},
		}

		result := s.ProcessDocument(ctx, job)
		if result.Status != jobModel.JobStatusError {
			t.Errorf("Status got %v, want %v", result.Status, jobModel.JobStatusError)
		}
	})
}
