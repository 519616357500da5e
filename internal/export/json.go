package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/radworks/ctdose/internal/report"
)

// DefaultAggregateFilename is the JSON artifact holding every report of a
// batch run, in discovery order.
const DefaultAggregateFilename = "ct_reports_all.json"

const outputDirPerm = 0o750

// WriteError reports an output artifact that could not be written. It is
// fatal for that artifact only; the in-memory extraction results survive.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteReports writes the aggregate JSON file plus one per-report file
// named by patient ID. Reports without a patient ID appear only in the
// aggregate; they have no stable key for an individual artifact.
func WriteReports(reports []*report.Report, outDir, aggregateName string) error {
	if aggregateName == "" {
		aggregateName = DefaultAggregateFilename
	}

	if err := os.MkdirAll(outDir, outputDirPerm); err != nil {
		return &WriteError{Path: outDir, Err: err}
	}

	if err := writeJSON(filepath.Join(outDir, aggregateName), reports); err != nil {
		return err
	}

	for _, rep := range reports {
		if rep.Essential.PatientID == nil || *rep.Essential.PatientID == "" {
			continue
		}
		name := fmt.Sprintf("ct_report_%s.json", *rep.Essential.PatientID)
		if err := writeJSON(filepath.Join(outDir, name), []*report.Report{rep}); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// ReadReports loads reports from a JSON output folder. The aggregate file
// is preferred; when it is missing, the lexically first *.json in the
// folder is used instead. A file holding a single report object rather
// than an array is accepted.
func ReadReports(inDir string) ([]*report.Report, string, error) {
	path := filepath.Join(inDir, DefaultAggregateFilename)
	if _, err := os.Stat(path); err != nil {
		candidates, globErr := filepath.Glob(filepath.Join(inDir, "*.json"))
		if globErr != nil || len(candidates) == 0 {
			return nil, "", fmt.Errorf("no JSON report files found in %s", inDir)
		}
		sort.Strings(candidates)
		path = candidates[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var reports []*report.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		var single report.Report
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", path, err)
		}
		reports = []*report.Report{&single}
	}

	return reports, filepath.Base(path), nil
}
