// Package report renders a classification result as the fixed plain-text
// assessment shared by the CLI export and the HTTP download endpoint.
package report

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alexanderramin/aiact/internal/domain"
)

// DefaultFilename is used when no usable file name is supplied.
const DefaultFilename = "EUAIAct_Results.txt"

const (
	rule       = "================================================="
	disclaimer = "DISCLAIMER: This assessment is provided for informational purposes only\n" +
		"and should not be considered legal advice. Consult with legal experts\n" +
		"for a comprehensive compliance assessment with the EU AI Act.\n"
)

var (
	// ErrEmptyResult is returned for a result with no system name.
	ErrEmptyResult = errors.New("result has no system name")
	// ErrUnknownCategory is returned for a result whose category is not one of the four tiers.
	ErrUnknownCategory = errors.New("unknown risk category")
)

// Validate checks that result can be rendered.
func Validate(result domain.ClassificationResult) error {
	if strings.TrimSpace(result.SystemName) == "" {
		return ErrEmptyResult
	}
	if !result.RiskCategory.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, result.RiskCategory)
	}
	return nil
}

// Write renders result to w.
func Write(w io.Writer, result domain.ClassificationResult) error {
	if err := Validate(result); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\nEU AI ACT RISK CLASSIFICATION ASSESSMENT\n%s\n\n", rule, rule)

	fmt.Fprint(bw, "SYSTEM INFORMATION\n-----------------\n")
	fmt.Fprintf(bw, "System Name: %s\n", result.SystemName)
	fmt.Fprintf(bw, "System Purpose: %s\n\n", result.SystemPurpose)

	fmt.Fprint(bw, "CLASSIFICATION RESULT\n-------------------\n")
	fmt.Fprintf(bw, "EU AI Act Classification: %s\n\n", result.RiskCategory)

	fmt.Fprint(bw, "Risk Category Explanation:\n")
	for _, line := range result.RiskCategory.Explanation() {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprint(bw, "\n\n")

	fmt.Fprint(bw, "COMPLIANCE RECOMMENDATIONS\n-------------------------\n")
	for i, rec := range result.Recommendations {
		fmt.Fprintf(bw, "%d. %s\n", i+1, rec)
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprintf(bw, "%s\n%s%s\n", rule, disclaimer, rule)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Render returns the report as bytes.
func Render(result domain.ClassificationResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders result into path, creating parent directories.
func WriteFile(path string, result domain.ClassificationResult) error {
	data, err := Render(result)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}

// SanitizeFilename reduces name to a bare file name safe for a
// Content-Disposition header. It drops directories, quotes and control
// characters, and appends ".txt" when there is no extension. An empty
// result becomes fallback, or DefaultFilename if fallback is empty.
func SanitizeFilename(name, fallback string) string {
	fallback = domain.CoalesceStr(fallback, DefaultFilename)
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))

	name = strings.Map(func(r rune) rune {
		if r == '"' || r == '/' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if name == "" || name == "." || name == ".." {
		return fallback
	}
	if filepath.Ext(name) == "" {
		name += ".txt"
	}
	return name
}
