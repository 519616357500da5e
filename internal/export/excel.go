package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/radworks/ctdose/internal/report"
)

// Placeholder fills every spreadsheet cell whose field was never matched,
// so each row has uniform column population with no blank cells.
const Placeholder = "-"

// SheetName is the worksheet holding the per-acquisition rows.
const SheetName = "CT Reports"

// headers is the fixed column order of the tabular export.
var headers = []string{
	"Patient ID",
	"Sex",
	"Birth Date",
	"Age",
	"Protocol",
	"Exam Date",
	"Series Description",
	"Scan Mode",
	"mAs",
	"kV",
	"CTDIvol",
	"DLP",
	"Total DLP",
	"Phantom Type",
	"SSDE",
	"Avg Scan Size",
}

// column widths, index-aligned with headers.
var columnWidths = []float64{15, 10, 18, 10, 20, 18, 20, 15, 10, 10, 10, 10, 10, 15, 10, 15}

// BuildWorkbook renders the reports into an XLSX workbook: one row per
// acquisition, plus one row carrying the patient-level data for a report
// that has no acquisitions at all.
func BuildWorkbook(reports []*report.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet(SheetName); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to locate sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	row := 2
	for _, rep := range reports {
		for _, cells := range reportRows(rep) {
			for col, value := range cells {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(SheetName, cell, value); err != nil {
					return nil, fmt.Errorf("failed to write row %d: %w", row, err)
				}
				if err := f.SetCellStyle(SheetName, cell, cell, cellStyle); err != nil {
					return nil, fmt.Errorf("failed to style row %d: %w", row, err)
				}
			}
			row++
		}
	}

	return f, nil
}

// WriteWorkbook builds the workbook and saves it to path.
func WriteWorkbook(reports []*report.Report, path string) error {
	f, err := BuildWorkbook(reports)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// reportRows flattens one report into spreadsheet rows, one per
// acquisition. A report without acquisitions still yields a single row so
// the patient-level data is never dropped.
func reportRows(rep *report.Report) [][]string {
	patientID := orPlaceholder(rep.Essential.PatientID)
	sex := orPlaceholder(rep.Essential.Sex)
	birthDate := orPlaceholder(rep.Essential.BirthDate)
	studyDate := orPlaceholder(rep.Essential.StudyDate)
	totalDLP := orPlaceholder(rep.Irradiation.TotalDLP)
	age := ageCell(rep.Essential.BirthDate, rep.Essential.StudyDate)

	if len(rep.Acquisitions) == 0 {
		return [][]string{{
			patientID, sex, birthDate, age,
			Placeholder, studyDate, Placeholder, Placeholder,
			Placeholder, Placeholder, Placeholder, Placeholder,
			totalDLP, Placeholder, Placeholder, Placeholder,
		}}
	}

	rows := make([][]string, 0, len(rep.Acquisitions))
	for _, acq := range rep.Acquisitions {
		rows = append(rows, []string{
			patientID,
			sex,
			birthDate,
			age,
			orPlaceholder(acq.Protocol),
			studyDate,
			orPlaceholder(acq.Comment),
			orPlaceholder(acq.AcquisitionType),
			orPlaceholder(acq.XRaySourceParams.TubeCurrent),
			orPlaceholder(acq.XRaySourceParams.KVP),
			orPlaceholder(acq.CTDose.MeanCTDIvol),
			orPlaceholder(acq.CTDose.DLP),
			totalDLP,
			orPlaceholder(acq.CTDose.PhantomType),
			orPlaceholder(acq.CTDose.SizeSpecificDose),
			// Average scan size is never present in the source reports.
			Placeholder,
		})
	}
	return rows
}

func ageCell(birthDate, studyDate *string) string {
	if birthDate == nil || studyDate == nil {
		return Placeholder
	}
	age, ok := Age(*birthDate, *studyDate)
	if !ok {
		return Placeholder
	}
	return fmt.Sprintf("%d", age)
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}
