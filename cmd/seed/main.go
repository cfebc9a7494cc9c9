package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// The registries are in-memory, so seeding goes through the running HTTP API
// instead of a database.

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	gofakeit.Seed(time.Now().UnixNano())

	client := &http.Client{Timeout: 5 * time.Second}

	doctorIDs, err := seedDoctors(client, baseURL, 20)
	if err != nil {
		log.Fatalf("seed doctors: %v", err)
	}
	patientIDs, err := seedPatients(client, baseURL, 200)
	if err != nil {
		log.Fatalf("seed patients: %v", err)
	}
	if err := seedAppointments(client, baseURL, patientIDs, doctorIDs, 100); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	log.Println("seed complete")
}

func seedDoctors(client *http.Client, baseURL string, count int) ([]string, error) {
	log.Printf("seeding %d doctors", count)

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		spec := specialties[gofakeit.Number(0, len(specialties)-1)]
		body := map[string]any{
			"name":             "Dr. " + gofakeit.Name(),
			"specialization":   spec,
			"department":       spec,
			"contact_number":   gofakeit.Phone(),
			"email":            gofakeit.Email(),
			"experience_years": gofakeit.Number(1, 35),
			"consultation_fee": float64(gofakeit.Number(50, 400)),
		}

		id, err := post(client, baseURL+"/doctors", body)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	log.Println("doctors seeded")
	return ids, nil
}

func seedPatients(client *http.Client, baseURL string, count int) ([]string, error) {
	log.Printf("seeding %d patients", count)

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		body := map[string]any{
			"name":           gofakeit.Name(),
			"age":            gofakeit.Number(1, 95),
			"gender":         gofakeit.Gender(),
			"blood_group":    bloodGroups[gofakeit.Number(0, len(bloodGroups)-1)],
			"contact_number": gofakeit.Phone(),
			"address":        gofakeit.Address().Address,
			"critical":       gofakeit.Number(0, 9) == 0,
		}

		id, err := post(client, baseURL+"/patients", body)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)

		if (i+1)%50 == 0 {
			log.Printf("patients seeded: %d/%d", i+1, count)
		}
	}

	log.Println("patients seeded")
	return ids, nil
}

func seedAppointments(client *http.Client, baseURL string, patientIDs, doctorIDs []string, count int) error {
	log.Printf("seeding %d appointments", count)

	slots := []string{
		"09:00-10:00", "10:00-11:00", "11:00-12:00",
		"14:00-15:00", "15:00-16:00", "16:00-17:00",
	}

	booked := 0
	for i := 0; i < count; i++ {
		body := map[string]any{
			"patient_id": patientIDs[gofakeit.Number(0, len(patientIDs)-1)],
			"doctor_id":  doctorIDs[gofakeit.Number(0, len(doctorIDs)-1)],
			"date":       time.Now().AddDate(0, 0, gofakeit.Number(1, 14)).Format("2006-01-02"),
			"time_slot":  slots[gofakeit.Number(0, len(slots)-1)],
			"symptoms":   gofakeit.Sentence(),
		}

		// Random slots collide sometimes; a conflict is fine during seeding.
		if _, err := post(client, baseURL+"/appointments", body); err == nil {
			booked++
		}
	}

	log.Printf("appointments seeded: %d booked, %d conflicted", booked, count-booked)
	return nil
}

type seedResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID string `json:"id"`
	} `json:"data"`
	Error string `json:"error"`
}

func post(client *http.Client, url string, body map[string]any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var decoded seedResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode response from %s: %w", url, err)
	}
	if !decoded.Success {
		return "", fmt.Errorf("%s: %s", url, decoded.Error)
	}

	return decoded.Data.ID, nil
}
