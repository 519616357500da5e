package extract

import (
	"strings"

	"github.com/radworks/ctdose/internal/report"
)

// Assembler builds one structured report from one document's raw text. A
// failed field match leaves that field nil and never aborts assembly; a
// report where nothing matched is still valid output.
type Assembler struct {
	matcher   *Matcher
	segmenter *Segmenter
}

// NewAssembler creates an assembler from a matcher and a segmenter.
func NewAssembler(matcher *Matcher, segmenter *Segmenter) *Assembler {
	return &Assembler{matcher: matcher, segmenter: segmenter}
}

// NewDefaultAssembler wires an assembler with the default pattern library
// and acquisition marker.
func NewDefaultAssembler() *Assembler {
	return NewAssembler(NewMatcher(NewLibrary()), NewDefaultSegmenter())
}

// Assemble normalizes the raw text and extracts a full report: hospital
// header, essential identifiers, device and irradiation data over the whole
// document, then per-acquisition fields scoped to each acquisition block so
// values never leak across acquisition boundaries.
func (a *Assembler) Assemble(rawText string) *report.Report {
	text := Normalize(rawText)

	rep := &report.Report{}
	rep.Hospital, rep.ReportDate = extractHospitalHeader(text)

	rep.Essential = report.EssentialInfo{
		PatientID:       a.matcher.Match(text, FieldPatientID),
		StudyID:         a.matcher.Match(text, FieldStudyID),
		AccessionNumber: a.matcher.Match(text, FieldAccessionNumber),
		StudyDate:       a.matcher.Match(text, FieldStudyDate),
		BirthDate:       a.matcher.Match(text, FieldBirthDate),
		Sex:             a.matcher.Match(text, FieldSex),
	}

	rep.Device = report.DeviceInfo{
		ObserverName:     a.matcher.Match(text, FieldObserverName),
		Manufacturer:     a.matcher.Match(text, FieldManufacturer),
		ModelName:        a.matcher.Match(text, FieldModelName),
		SerialNumber:     a.matcher.Match(text, FieldSerialNumber),
		PhysicalLocation: a.matcher.Match(text, FieldPhysicalLocation),
	}

	rep.Irradiation = report.IrradiationInfo{
		StartTime:   a.matcher.Match(text, FieldIrradiationStart),
		EndTime:     a.matcher.Match(text, FieldIrradiationEnd),
		TotalEvents: a.matcher.Match(text, FieldTotalEvents),
		TotalDLP:    a.matcher.Match(text, FieldTotalDLP),
	}

	for _, block := range a.segmenter.Split(text) {
		rep.Acquisitions = append(rep.Acquisitions, a.assembleAcquisition(block))
	}

	return rep
}

// assembleAcquisition extracts all per-acquisition fields from one block.
func (a *Assembler) assembleAcquisition(block string) report.Acquisition {
	return report.Acquisition{
		Protocol:            a.matcher.Match(block, FieldProtocol),
		TargetRegion:        a.matcher.Match(block, FieldTargetRegion),
		AcquisitionType:     a.matcher.Match(block, FieldAcquisitionType),
		ProcedureContext:    a.matcher.Match(block, FieldProcedureContext),
		IrradiationEventUID: a.matcher.Match(block, FieldIrradiationEventUID),
		Comment:             a.matcher.Match(block, FieldComment),
		AcquisitionParams: report.AcquisitionParams{
			ExposureTime:             a.matcher.Match(block, FieldExposureTime),
			ScanningLength:           a.matcher.Match(block, FieldScanningLength),
			NominalSingleCollimation: a.matcher.Match(block, FieldNominalSingleCollimation),
			NominalTotalCollimation:  a.matcher.Match(block, FieldNominalTotalCollimation),
			NumXRaySources:           a.matcher.Match(block, FieldNumXRaySources),
			PitchFactor:              a.matcher.Match(block, FieldPitchFactor),
		},
		XRaySourceParams: report.XRaySourceParams{
			Identification:          a.matcher.Match(block, FieldSourceIdentification),
			KVP:                     a.matcher.Match(block, FieldKVP),
			MaxTubeCurrent:          a.matcher.Match(block, FieldMaxTubeCurrent),
			TubeCurrent:             a.matcher.Match(block, FieldTubeCurrent),
			ExposureTimePerRotation: a.matcher.Match(block, FieldExposureTimePerRotation),
		},
		CTDose: report.CTDose{
			MeanCTDIvol:      a.matcher.Match(block, FieldMeanCTDIvol),
			PhantomType:      a.matcher.Match(block, FieldPhantomType),
			DLP:              a.matcher.Match(block, FieldDLP),
			SizeSpecificDose: a.matcher.Match(block, FieldSizeSpecificDose),
			CTDIvolAlert:     a.matcher.Match(block, FieldCTDIvolAlert),
		},
	}
}

// extractHospitalHeader reads the institution name and report date from the
// "By <hospital> on CT, <date>" banner that dose report renderers place in
// the first few lines of the document.
func extractHospitalHeader(text string) (hospital, reportDate *string) {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if !strings.Contains(line, "Hospital") || !strings.Contains(line, "on CT") {
			continue
		}
		parts := strings.SplitN(line, "on CT,", 2)
		if len(parts) == 2 {
			h := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), "By "))
			d := strings.TrimSpace(parts[1])
			if h != "" {
				hospital = &h
			}
			if d != "" {
				reportDate = &d
			}
		}
		break
	}
	return hospital, reportDate
}
