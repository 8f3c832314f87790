// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionMethod names the cascade stage that produced the final text.
type ExtractionMethod string

const (
	MethodNone       ExtractionMethod = "none"
	MethodDirectText ExtractionMethod = "direct_text"
	MethodStructured ExtractionMethod = "structured"
	MethodMarkdown   ExtractionMethod = "markdown"
	MethodPDFReader  ExtractionMethod = "pypdf2_fallback"
	MethodFailed     ExtractionMethod = "failed"
	MethodError      ExtractionMethod = "error"
)

// Metadata describes the converted document and how its text was obtained.
type Metadata struct {
	// PageCount is the number of pages reported by the engine, or 0.
	PageCount int `json:"page_count" yaml:"page_count"`

	// HasTables reports whether the engine found at least one table.
	HasTables bool `json:"has_tables" yaml:"has_tables"`

	// HasFigures reports whether the engine found at least one figure.
	HasFigures bool `json:"has_figures" yaml:"has_figures"`

	// ProcessingTime is the engine-reported conversion time in seconds, or 0.
	ProcessingTime float64 `json:"processing_time" yaml:"processing_time"`

	// ExtractionMethod is the cascade stage that won.
	ExtractionMethod ExtractionMethod `json:"extraction_method" yaml:"extraction_method"`
}

// ExtractionResult is the single record printed for one invocation.
// ExtractedText and Metadata are set on success, Error on failure. FilePath
// is empty only for the pre-flight usage and missing-file errors.
type ExtractionResult struct {
	Success       bool      `json:"success"`
	ExtractedText *string   `json:"extracted_text,omitempty"`
	Metadata      *Metadata `json:"metadata,omitempty"`
	Error         *string   `json:"error,omitempty"`
	FilePath      string    `json:"file_path,omitempty"`
}

// Succeeded builds a successful result for path.
func Succeeded(path, text string, meta Metadata) ExtractionResult {
	return ExtractionResult{
		Success:       true,
		ExtractedText: &text,
		Metadata:      &meta,
		FilePath:      path,
	}
}

// Failed builds a failed result for path. An empty path omits file_path.
func Failed(path, msg string) ExtractionResult {
	return ExtractionResult{
		Success:  false,
		Error:    &msg,
		FilePath: path,
	}
}
