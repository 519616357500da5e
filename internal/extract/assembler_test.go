package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReportText mimics the linearized text of a two-acquisition CT dose
// report as produced by a PDF renderer, including a stranded column label.
const sampleReportText = `By General City Hospital on CT, May 5, 2025

Patient ID: 12345
Study ID: 67
Accession Number: 890123
Study Date: May 5, 2025
Patient's Birth Date: Jul 1, 1997
Patient's Sex: F

Device Observer Name: CT99
Device Observer Manufacturer: SIEMENS
Device Observer Model Name: Sensation 64
Device Observer Serial Number: 54321
Device Observer Physical Location during observation: Radiology Wing B

Start of X-Ray Irradiation: May 5, 2025 10:02:11
End of X-Ray Irradiation: May 5, 2025 10:04:58
Total Number of Irradiation Events = 3 events
CT Dose Length Product Total = 445.02 mGy.cm

5.1 CT Acquisition
Acquisition Protocol:
Thorax Routine
Target Region: Chest
CT Acquisition Type: Spiral Acquisition
Comment: Topogram
Exposure Time = 4.99 s
Scanning Length = 312.00 mm
Nominal Single Collimation Width = 0.60 mm
Nominal Total Collimation Width = 38.40 mm
Number of X-Ray Sources = 1 X-Ray sources
Pitch Factor = 1.20 ratio
Identification of the X-Ray Source: A
KVP = 120 kV
Maximum X-Ray Tube Current = 416 mA
X-Ray Tube Current = 208 mA
Exposure Time per Rotation = 0.50 s
Mean CTDIvol = 5.67 mGy
CTDIw Phantom Type: IEC Body Dosimetry Phantom
DLP = 187.33 mGy.cm

5.2 CT Acquisition
Acquisition Protocol: Abdomen Native
Target Region: Abdomen
CT Acquisition Type: Spiral Acquisition
Exposure Time = 7.20 s
KVP = 100 kV
X-Ray Tube Current = 180 mA
Mean CTDIvol = 4.10 mGy
DLP = 257.69 mGy.cm
Size Specific Dose Estimation = 5.02 mGy
`

func strVal(t *testing.T, s *string) string {
	t.Helper()
	require.NotNil(t, s)
	return *s
}

func TestAssembleFullReport(t *testing.T) {
	rep := NewDefaultAssembler().Assemble(sampleReportText)

	assert.Equal(t, "General City Hospital", strVal(t, rep.Hospital))
	assert.Equal(t, "May 5, 2025", strVal(t, rep.ReportDate))

	assert.Equal(t, "12345", strVal(t, rep.Essential.PatientID))
	assert.Equal(t, "67", strVal(t, rep.Essential.StudyID))
	assert.Equal(t, "890123", strVal(t, rep.Essential.AccessionNumber))
	assert.Equal(t, "May 5, 2025", strVal(t, rep.Essential.StudyDate))
	assert.Equal(t, "Jul 1, 1997", strVal(t, rep.Essential.BirthDate))
	assert.Equal(t, "F", strVal(t, rep.Essential.Sex))

	assert.Equal(t, "CT99", strVal(t, rep.Device.ObserverName))
	assert.Equal(t, "SIEMENS", strVal(t, rep.Device.Manufacturer))
	assert.Equal(t, "Sensation 64", strVal(t, rep.Device.ModelName))
	assert.Equal(t, "54321", strVal(t, rep.Device.SerialNumber))
	assert.Equal(t, "Radiology Wing B", strVal(t, rep.Device.PhysicalLocation))

	assert.Equal(t, "May 5, 2025 10:02:11", strVal(t, rep.Irradiation.StartTime))
	assert.Equal(t, "May 5, 2025 10:04:58", strVal(t, rep.Irradiation.EndTime))
	assert.Equal(t, "3 events", strVal(t, rep.Irradiation.TotalEvents))
	assert.Equal(t, "445.02 mGy.cm", strVal(t, rep.Irradiation.TotalDLP))

	require.Len(t, rep.Acquisitions, 2)

	first := rep.Acquisitions[0]
	// The stranded "Acquisition Protocol:" label was rejoined with its
	// value line before matching.
	assert.Equal(t, "Thorax Routine", strVal(t, first.Protocol))
	assert.Equal(t, "Chest", strVal(t, first.TargetRegion))
	assert.Equal(t, "Spiral Acquisition", strVal(t, first.AcquisitionType))
	assert.Equal(t, "Topogram", strVal(t, first.Comment))
	assert.Equal(t, "4.99 s", strVal(t, first.AcquisitionParams.ExposureTime))
	assert.Equal(t, "312.00 mm", strVal(t, first.AcquisitionParams.ScanningLength))
	assert.Equal(t, "0.60 mm", strVal(t, first.AcquisitionParams.NominalSingleCollimation))
	assert.Equal(t, "38.40 mm", strVal(t, first.AcquisitionParams.NominalTotalCollimation))
	assert.Equal(t, "1 X-Ray sources", strVal(t, first.AcquisitionParams.NumXRaySources))
	assert.Equal(t, "1.20 ratio", strVal(t, first.AcquisitionParams.PitchFactor))
	assert.Equal(t, "A", strVal(t, first.XRaySourceParams.Identification))
	assert.Equal(t, "120 kV", strVal(t, first.XRaySourceParams.KVP))
	assert.Equal(t, "416 mA", strVal(t, first.XRaySourceParams.MaxTubeCurrent))
	assert.Equal(t, "208 mA", strVal(t, first.XRaySourceParams.TubeCurrent))
	assert.Equal(t, "0.50 s", strVal(t, first.XRaySourceParams.ExposureTimePerRotation))
	assert.Equal(t, "5.67 mGy", strVal(t, first.CTDose.MeanCTDIvol))
	assert.Equal(t, "IEC Body Dosimetry Phantom", strVal(t, first.CTDose.PhantomType))
	assert.Equal(t, "187.33 mGy.cm", strVal(t, first.CTDose.DLP))
	assert.Nil(t, first.CTDose.SizeSpecificDose)
	assert.Nil(t, first.CTDose.CTDIvolAlert)
}

func TestAssembleScopesFieldsToAcquisitionBlocks(t *testing.T) {
	rep := NewDefaultAssembler().Assemble(sampleReportText)
	require.Len(t, rep.Acquisitions, 2)

	second := rep.Acquisitions[1]
	assert.Equal(t, "Abdomen Native", strVal(t, second.Protocol))
	assert.Equal(t, "100 kV", strVal(t, second.XRaySourceParams.KVP))
	assert.Equal(t, "180 mA", strVal(t, second.XRaySourceParams.TubeCurrent))
	assert.Equal(t, "257.69 mGy.cm", strVal(t, second.CTDose.DLP))
	assert.Equal(t, "5.02 mGy", strVal(t, second.CTDose.SizeSpecificDose))

	// Values present only in the first block must not leak into the second.
	assert.Nil(t, second.Comment)
	assert.Nil(t, second.CTDose.PhantomType)
	assert.Nil(t, second.XRaySourceParams.MaxTubeCurrent)
	assert.Nil(t, second.AcquisitionParams.PitchFactor)
}

func TestAssembleWithoutAcquisitionMarkers(t *testing.T) {
	text := "By Small Clinic Hospital on CT, Jan 2, 2024\nPatient ID: 99\nPatient's Sex: M"
	rep := NewDefaultAssembler().Assemble(text)

	assert.Equal(t, "99", strVal(t, rep.Essential.PatientID))
	assert.Equal(t, "M", strVal(t, rep.Essential.Sex))
	assert.Empty(t, rep.Acquisitions)
}

func TestAssembleEmptyDocumentIsValid(t *testing.T) {
	rep := NewDefaultAssembler().Assemble("")
	require.NotNil(t, rep)
	assert.Nil(t, rep.Hospital)
	assert.Nil(t, rep.Essential.PatientID)
	assert.Empty(t, rep.Acquisitions)
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := NewDefaultAssembler()
	assert.Equal(t, a.Assemble(sampleReportText), a.Assemble(sampleReportText))
}

func TestAssembleHospitalHeaderOnlyInTopLines(t *testing.T) {
	text := "line1\nline2\nline3\nline4\nline5\nBy Late Hospital on CT, Jan 1, 2020"
	rep := NewDefaultAssembler().Assemble(text)
	assert.Nil(t, rep.Hospital)
	assert.Nil(t, rep.ReportDate)
}
