package api

type RegisterPatientRequest struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	BloodGroup    string `json:"blood_group"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Critical      bool   `json:"critical,omitempty"`
}

type RegisterDoctorRequest struct {
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Department      string  `json:"department"`
	ContactNumber   string  `json:"contact_number"`
	Email           string  `json:"email"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
}

type BookAppointmentRequest struct {
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"` // 2006-01-02
	TimeSlot  string `json:"time_slot"`
	Symptoms  string `json:"symptoms,omitempty"`
}

type CompleteAppointmentRequest struct {
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
}

type MedicalRecordRequest struct {
	Record string `json:"record"`
}

type MarkCriticalRequest struct {
	Critical bool `json:"critical"`
}

type BillingRequest struct {
	BillingType     string  `json:"billing_type"` // cash or insurance
	BaseFee         float64 `json:"base_fee"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	Provider        string  `json:"provider,omitempty"`
	PolicyNumber    string  `json:"policy_number,omitempty"`
	CoveragePercent float64 `json:"coverage_percent,omitempty"`
}

type BillingResponse struct {
	BillingType string  `json:"billing_type"`
	BaseFee     float64 `json:"base_fee"`
	Amount      float64 `json:"amount"`
	Details     string  `json:"details"`
}

type GenerateReportRequest struct {
	PatientID   string `json:"patient_id"`
	ReportType  string `json:"report_type"`
	Content     string `json:"content"`
	GeneratedBy string `json:"generated_by"`
}

type AvailabilityResponse struct {
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type PatientStatsResponse struct {
	Total        int            `json:"total"`
	Critical     int            `json:"critical"`
	ByBloodGroup map[string]int `json:"by_blood_group"`
}

type DoctorStatsResponse struct {
	Total              int                `json:"total"`
	ByDepartment       map[string]int     `json:"by_department"`
	AvgFeeByDepartment map[string]float64 `json:"avg_fee_by_department"`
}
