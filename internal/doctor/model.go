package doctor

// DefaultSlots is the slot vocabulary assigned to a doctor at registration.
// It is the menu of offerable time-of-day labels, not a live calendar.
var DefaultSlots = []string{
	"09:00-10:00", "10:00-11:00", "11:00-12:00",
	"14:00-15:00", "15:00-16:00", "16:00-17:00",
}

// Doctor is a registered doctor.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Department      string   `json:"department"`
	ContactNumber   string   `json:"contact_number"`
	Email           string   `json:"email"`
	ExperienceYears int      `json:"experience_years"`
	ConsultationFee float64  `json:"consultation_fee"`
	Slots           []string `json:"slots"`
	Qualifications  []string `json:"qualifications"`
}
