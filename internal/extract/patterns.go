package extract

import "regexp"

// Field identifies one logical value extracted from report text.
type Field string

// Essential identifier fields.
const (
	FieldPatientID       Field = "patient_id"
	FieldStudyID         Field = "study_id"
	FieldAccessionNumber Field = "accession_number"
	FieldStudyDate       Field = "study_date"
	FieldBirthDate       Field = "birth_date"
	FieldSex             Field = "sex"
)

// Device observer fields.
const (
	FieldObserverName     Field = "observer_name"
	FieldManufacturer     Field = "manufacturer"
	FieldModelName        Field = "model_name"
	FieldSerialNumber     Field = "serial_number"
	FieldPhysicalLocation Field = "physical_location"
)

// Irradiation summary fields.
const (
	FieldIrradiationStart Field = "start_time"
	FieldIrradiationEnd   Field = "end_time"
	FieldTotalEvents      Field = "total_events"
	FieldTotalDLP         Field = "total_dlp"
)

// Per-acquisition fields.
const (
	FieldProtocol            Field = "protocol"
	FieldTargetRegion        Field = "target_region"
	FieldAcquisitionType     Field = "acquisition_type"
	FieldProcedureContext    Field = "procedure_context"
	FieldIrradiationEventUID Field = "irradiation_event_uid"
	FieldComment             Field = "comment"

	FieldExposureTime             Field = "exposure_time"
	FieldScanningLength           Field = "scanning_length"
	FieldNominalSingleCollimation Field = "nominal_single_collimation"
	FieldNominalTotalCollimation  Field = "nominal_total_collimation"
	FieldNumXRaySources           Field = "num_xray_sources"
	FieldPitchFactor              Field = "pitch_factor"

	FieldSourceIdentification    Field = "identification"
	FieldKVP                     Field = "kvp"
	FieldMaxTubeCurrent          Field = "max_tube_current"
	FieldTubeCurrent             Field = "tube_current"
	FieldExposureTimePerRotation Field = "exposure_time_per_rotation"

	FieldMeanCTDIvol      Field = "mean_ctdivol"
	FieldPhantomType      Field = "phantom_type"
	FieldDLP              Field = "dlp"
	FieldSizeSpecificDose Field = "size_specific_dose"
	FieldCTDIvolAlert     Field = "ctdivol_alert_value"
)

// pattern is one alternative for locating a field. The first capture group
// is the value. notPreceded, when set, rejects a match whose preceding text
// ends with the guard expression; RE2 has no lookbehind, so the guard is
// checked by the matcher against the prefix instead.
type pattern struct {
	re          *regexp.Regexp
	notPreceded *regexp.Regexp
}

// Library maps each field to its ordered list of match patterns, most
// specific first. It is built once at startup and never mutated; callers
// share a single instance by reference.
type Library struct {
	fields map[Field][]pattern
}

func pat(expr string) pattern {
	return pattern{re: regexp.MustCompile(expr)}
}

func patGuarded(expr, guard string) pattern {
	return pattern{re: regexp.MustCompile(expr), notPreceded: regexp.MustCompile(guard)}
}

// datePatterns builds the alternatives for a date-valued label. Dose report
// renderers emit dates in several shapes, and the trailing text on the same
// physical line is often another column's content, so shaped captures come
// first and the whole rest of the line is only a last resort.
func datePatterns(label string) []pattern {
	return []pattern{
		pat(`(?i)` + label + `\s*:\s*([A-Za-z]{3,9}\.? \d{1,2}, \d{4})`),
		pat(`(?i)` + label + `\s*:\s*(\d{4}-\d{2}-\d{2})`),
		pat(`(?i)` + label + `\s*:\s*(\d{1,2}/\d{1,2}/\d{4})`),
		pat(`(?i)` + label + `\s*:\s*(\d{8})`),
		pat(`(?i)` + label + `\s*:\s*(.+)`),
	}
}

// NewLibrary compiles the default pattern set for CT dose reports.
func NewLibrary() *Library {
	fields := map[Field][]pattern{
		FieldPatientID: {
			pat(`(?i)Patient\s*ID\s*:\s*(\d+)`),
			pat(`(?i)PatientID\s*:\s*(\d+)`),
			// Bare "ID:" is ambiguous; only consulted when the
			// qualified labels fail.
			pat(`(?i)ID\s*:\s*(\d+)`),
		},
		FieldStudyID: {
			pat(`(?i)Study\s*ID\s*:\s*(\d+)`),
			pat(`(?i)StudyID\s*:\s*(\d+)`),
		},
		FieldAccessionNumber: {
			pat(`(?i)Accession\s*Number\s*:\s*(\d+)`),
			pat(`(?i)AccessionNumber\s*:\s*(\d+)`),
		},
		FieldStudyDate: datePatterns(`Study\s*Date`),
		FieldBirthDate: append(
			datePatterns(`Patient's\s*Birth\s*Date`),
			datePatterns(`Birth\s*Date`)...,
		),
		FieldSex: {
			pat(`(?i)Patient's\s*Sex\s*:\s*(\w+)`),
			pat(`(?i)Sex\s*:\s*(\w+)`),
			pat(`(?i)Gender\s*:\s*(\w+)`),
		},

		FieldObserverName:     {pat(`(?i)Device Observer Name\s*:\s*(.+)`)},
		FieldManufacturer:     {pat(`(?i)Device Observer Manufacturer\s*:\s*(.+)`)},
		FieldModelName:        {pat(`(?i)Device Observer Model Name\s*:\s*(.+)`)},
		FieldSerialNumber:     {pat(`(?i)Device Observer Serial Number\s*:\s*(.+)`)},
		FieldPhysicalLocation: {pat(`(?i)Device Observer Physical Location during observation\s*:\s*(.+)`)},

		FieldIrradiationStart: {pat(`(?i)Start of X-Ray Irradiation\s*:\s*(.+)`)},
		FieldIrradiationEnd:   {pat(`(?i)End of X-Ray Irradiation\s*:\s*(.+)`)},
		FieldTotalEvents:      {pat(`(?i)Total Number of Irradiation Events\s*=\s*([\d.]+\s*events)`)},
		FieldTotalDLP:         {pat(`(?i)CT Dose Length Product Total\s*=\s*([\d.]+\s*mGy\.cm)`)},

		FieldProtocol:            {pat(`(?i)Acquisition Protocol\s*:\s*(.+)`)},
		FieldTargetRegion:        {pat(`(?i)Target Region\s*:\s*(.+)`)},
		FieldAcquisitionType:     {pat(`(?i)CT Acquisition Type\s*:\s*(.+)`)},
		FieldProcedureContext:    {pat(`(?i)Procedure Context\s*:\s*(.+)`)},
		FieldIrradiationEventUID: {pat(`(?i)Irradiation Event UID\s*:\s*(.+)`)},
		FieldComment:             {pat(`(?i)Comment\s*:\s*(.+)`)},

		FieldExposureTime:             {pat(`(?i)Exposure Time\s*=\s*([\d.]+\s*s)`)},
		FieldScanningLength:           {pat(`(?i)Scanning Length\s*=\s*([\d.]+\s*mm)`)},
		FieldNominalSingleCollimation: {pat(`(?i)Nominal Single Collimation Width\s*=\s*([\d.]+\s*mm)`)},
		FieldNominalTotalCollimation:  {pat(`(?i)Nominal Total Collimation Width\s*=\s*([\d.]+\s*mm)`)},
		FieldNumXRaySources:           {pat(`(?i)Number of X-Ray Sources\s*=\s*([\d.]+\s*X-Ray sources)`)},
		FieldPitchFactor:              {pat(`(?i)Pitch Factor\s*=\s*([\d.]+\s*ratio)`)},

		FieldSourceIdentification: {pat(`(?i)Identification of the X-Ray Source\s*:\s*(.+)`)},
		FieldKVP:                  {pat(`(?i)KVP\s*=\s*([\d.]+\s*kV)`)},
		FieldMaxTubeCurrent:       {pat(`(?i)Maximum X-Ray Tube Current\s*=\s*([\d.]+\s*mA)`)},
		FieldTubeCurrent: {
			patGuarded(`(?i)X-Ray Tube Current\s*=\s*([\d.]+\s*mA)`, `(?i)Maximum\s+$`),
		},
		FieldExposureTimePerRotation: {pat(`(?i)Exposure Time per Rotation\s*=\s*([\d.]+\s*s)`)},

		FieldMeanCTDIvol:      {pat(`(?i)Mean CTDIvol\s*=\s*([\d.]+\s*mGy)`)},
		FieldPhantomType:      {pat(`(?i)CTDIw Phantom Type\s*:\s*(.+)`)},
		FieldDLP:              {pat(`(?i)DLP\s*=\s*([\d.]+\s*mGy\.cm)`)},
		FieldSizeSpecificDose: {pat(`(?i)Size Specific Dose Estimation\s*=\s*([\d.]+\s*mGy)`)},
		FieldCTDIvolAlert:     {pat(`(?i)CTDIvol Alert Value\s*=\s*([\d.]+\s*mGy)`)},
	}

	return &Library{fields: fields}
}

// Patterns returns the ordered pattern list for a field. The returned slice
// must not be modified.
func (l *Library) Patterns(f Field) []pattern {
	return l.fields[f]
}
