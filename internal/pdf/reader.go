package pdf

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader renders PDF documents to linearized plain text, one call per
// document.
type Reader struct {
	maxFileSize int64
	maxTextSize int
	validator   *Validator
}

// NewReader creates a PDF reader with the specified size constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
		validator:   NewValidator(maxFileSize),
	}
}

// ReadText extracts the plain text of every page, joined with newlines.
// Pages that fail to decode are skipped; only a document that cannot be
// opened or validated at all yields a *ReadError.
func (r *Reader) ReadText(path string) (string, error) {
	if err := r.validator.ValidateFile(path); err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		builder.WriteString("\n")
		totalLength += len(content) + 1
	}

	return builder.String(), nil
}
