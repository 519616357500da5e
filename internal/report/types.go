// Package report defines the structured record assembled from one CT
// radiation dose report document. Every leaf value is an optional string:
// nil means the field was never matched in the source text, and a present
// value preserves the original substring verbatim, including any unit
// suffix (e.g. "445.02 mGy.cm"). Dates are kept as captured; nothing in
// this package parses them.
package report

// EssentialInfo holds the identifiers used to link a report back to a
// patient and study. These are the highest-reliability fields and are
// extracted with the most pattern alternatives.
type EssentialInfo struct {
	PatientID       *string `json:"patient_id"`
	StudyID         *string `json:"study_id"`
	AccessionNumber *string `json:"accession_number"`
	StudyDate       *string `json:"study_date"`
	BirthDate       *string `json:"birth_date"`
	Sex             *string `json:"sex"`
}

// DeviceInfo describes the observing CT device.
type DeviceInfo struct {
	ObserverName     *string `json:"observer_name"`
	Manufacturer     *string `json:"manufacturer"`
	ModelName        *string `json:"model_name"`
	SerialNumber     *string `json:"serial_number"`
	PhysicalLocation *string `json:"physical_location"`
}

// IrradiationInfo summarizes the irradiation totals for the whole study.
type IrradiationInfo struct {
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	TotalEvents *string `json:"total_events"`
	TotalDLP    *string `json:"total_dlp"`
}

// AcquisitionParams holds the technical parameters of one CT acquisition.
type AcquisitionParams struct {
	ExposureTime             *string `json:"exposure_time"`
	ScanningLength           *string `json:"scanning_length"`
	NominalSingleCollimation *string `json:"nominal_single_collimation"`
	NominalTotalCollimation  *string `json:"nominal_total_collimation"`
	NumXRaySources           *string `json:"num_xray_sources"`
	PitchFactor              *string `json:"pitch_factor"`
}

// XRaySourceParams holds the x-ray source settings of one acquisition.
type XRaySourceParams struct {
	Identification          *string `json:"identification"`
	KVP                     *string `json:"kvp"`
	MaxTubeCurrent          *string `json:"max_tube_current"`
	TubeCurrent             *string `json:"tube_current"`
	ExposureTimePerRotation *string `json:"exposure_time_per_rotation"`
}

// CTDose holds the dose values of one acquisition.
type CTDose struct {
	MeanCTDIvol      *string `json:"mean_ctdivol"`
	PhantomType      *string `json:"phantom_type"`
	DLP              *string `json:"dlp"`
	SizeSpecificDose *string `json:"size_specific_dose"`
	CTDIvolAlert     *string `json:"ctdivol_alert_value"`
}

// Acquisition is one CT scan pass within a report. A report may describe
// any number of acquisitions, kept in document order.
type Acquisition struct {
	Protocol            *string          `json:"protocol"`
	TargetRegion        *string          `json:"target_region"`
	AcquisitionType     *string          `json:"acquisition_type"`
	ProcedureContext    *string          `json:"procedure_context"`
	IrradiationEventUID *string          `json:"irradiation_event_uid"`
	Comment             *string          `json:"comment"`
	AcquisitionParams   AcquisitionParams `json:"acquisition_params"`
	XRaySourceParams    XRaySourceParams  `json:"xray_source_params"`
	CTDose              CTDose            `json:"ct_dose"`
}

// Report is the structured record for one source document. A Report with
// every field nil is still valid output; absence of data is reportable,
// not an error.
type Report struct {
	Hospital     *string         `json:"hospital"`
	ReportDate   *string         `json:"report_date"`
	Essential    EssentialInfo   `json:"essential"`
	Device       DeviceInfo      `json:"device"`
	Irradiation  IrradiationInfo `json:"irradiation"`
	Acquisitions []Acquisition   `json:"acquisitions"`
}
