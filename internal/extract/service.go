package extract

import (
	"fmt"
	"log"

	"github.com/radworks/ctdose/internal/report"
)

// DocumentReader renders one source document to linearized text.
type DocumentReader interface {
	ReadText(path string) (string, error)
}

// DocumentFinder lists the documents of a source directory in a stable
// discovery order.
type DocumentFinder interface {
	FindDocuments(dir string) ([]string, error)
}

// Failure records one document that could not be rendered to text.
type Failure struct {
	Path string
	Err  error
}

// BatchResult accumulates the outcome of one directory run. Reports keep
// discovery order; Failures lists the documents that produced no report.
type BatchResult struct {
	Reports  []*report.Report
	Failures []Failure
}

// Service runs the extraction pipeline over a directory of documents.
// Documents are independent: a document that fails to render is recorded
// and skipped, and never prevents the rest of the batch from processing.
type Service struct {
	finder    DocumentFinder
	reader    DocumentReader
	assembler *Assembler
	debug     bool
}

// NewService creates a batch extraction service.
func NewService(finder DocumentFinder, reader DocumentReader, assembler *Assembler, debug bool) *Service {
	return &Service{finder: finder, reader: reader, assembler: assembler, debug: debug}
}

// ProcessDirectory extracts one report per readable document in dir. Only
// an unreadable directory is a hard failure; everything else degrades to
// per-document Failure entries.
func (s *Service) ProcessDirectory(dir string) (*BatchResult, error) {
	paths, err := s.finder.FindDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to discover documents in %s: %w", dir, err)
	}

	result := &BatchResult{}
	for _, path := range paths {
		text, err := s.reader.ReadText(path)
		if err != nil {
			result.Failures = append(result.Failures, Failure{Path: path, Err: err})
			log.Printf("skipping %s: %v", path, err)
			continue
		}

		rep := s.assembler.Assemble(text)
		result.Reports = append(result.Reports, rep)

		if s.debug {
			log.Printf("processed %s: patient_id=%s acquisitions=%d",
				path, stringOrEmpty(rep.Essential.PatientID), len(rep.Acquisitions))
		}
	}
	return result, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
