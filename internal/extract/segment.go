package extract

import (
	"fmt"
	"regexp"
)

// DefaultAcquisitionMarker matches the numbered section header that begins
// each CT acquisition sub-report, e.g. "5.1 CT Acquisition". The marker
// rule varies between report renderers, so it is a Segmenter parameter
// rather than a fixed constant.
const DefaultAcquisitionMarker = `\d+\.\d+\s+CT\s+Acquisition`

// Segmenter splits report text into one block per CT acquisition.
type Segmenter struct {
	marker *regexp.Regexp
}

// NewSegmenter compiles the given marker expression into a segmenter.
func NewSegmenter(marker string) (*Segmenter, error) {
	re, err := regexp.Compile(marker)
	if err != nil {
		return nil, fmt.Errorf("invalid acquisition marker %q: %w", marker, err)
	}
	return &Segmenter{marker: re}, nil
}

// NewDefaultSegmenter returns a segmenter using DefaultAcquisitionMarker.
func NewDefaultSegmenter() *Segmenter {
	return &Segmenter{marker: regexp.MustCompile(DefaultAcquisitionMarker)}
}

// Split returns one contiguous block per detected marker, in document
// order. Each block runs from its marker to the start of the next one, so
// every marker occurrence opens a new block and two acquisitions are never
// merged. Zero markers yields zero blocks; not every report carries
// acquisition-level detail.
func (s *Segmenter) Split(text string) []string {
	locs := s.marker.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}
