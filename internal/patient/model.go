package patient

import "time"

// Patient is a registered patient. MedicalHistory is an ordered, append-only
// list of free-text entries.
type Patient struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	BloodGroup     string    `json:"blood_group"`
	ContactNumber  string    `json:"contact_number"`
	Address        string    `json:"address"`
	MedicalHistory []string  `json:"medical_history"`
	Critical       bool      `json:"critical"`
	RegisteredAt   time.Time `json:"registered_at"`
}
