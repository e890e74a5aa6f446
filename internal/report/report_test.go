package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenTest compares got against testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll("testdata", 0o755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), got,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func limitedResult() domain.ClassificationResult {
	return domain.ClassificationResult{
		SystemName:    "Customer Service Bot",
		SystemPurpose: "AI-powered chatbot for customer service",
		RiskCategory:  domain.RiskLimited,
		Recommendations: []string{
			"Implement transparency measures",
			"Notify users when they interact with AI",
		},
	}
}

func TestRender_Golden(t *testing.T) {
	got, err := Render(limitedResult())
	require.NoError(t, err)
	goldenTest(t, "limited_risk", string(got))
}

func TestRender_ProhibitedExplanation(t *testing.T) {
	got, err := Render(domain.ClassificationResult{
		SystemName:      "Score",
		SystemPurpose:   "social scoring",
		RiskCategory:    domain.RiskProhibited,
		IsProhibited:    true,
		Recommendations: []string{"a", "b", "c"},
	})
	require.NoError(t, err)

	text := string(got)
	assert.Contains(t, text, "EU AI Act Classification: PROHIBITED\n")
	assert.Contains(t, text, "This AI system falls under prohibited practices according to the EU AI Act.\n")
	assert.Contains(t, text, "1. a\n2. b\n3. c\n")
}

func TestRender_RejectsInvalid(t *testing.T) {
	_, err := Render(domain.ClassificationResult{RiskCategory: domain.RiskMinimal})
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = Render(domain.ClassificationResult{SystemName: "x", RiskCategory: "Severe"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, limitedResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	require.NoError(t, WriteFile(path, limitedResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := Render(limitedResult())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, data))
}

func TestWriteFile_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteFile(filepath.Join(blocker, "out.txt"), limitedResult())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "creating report directory"))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Audit_Results.txt", "Audit_Results.txt"},
		{"no extension", "audit", "audit.txt"},
		{"strip unix dirs", "../../etc/passwd", "passwd.txt"},
		{"strip windows dirs", `C:\temp\report.txt`, "report.txt"},
		{"strip quotes", `a"b.txt`, "ab.txt"},
		{"strip control", "a\r\nb.txt", "ab.txt"},
		{"empty", "", DefaultFilename},
		{"dots", "..", DefaultFilename},
		{"spaces", "   ", DefaultFilename},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in, ""))
		})
	}
	assert.Equal(t, "custom.txt", SanitizeFilename("", "custom.txt"))
}
