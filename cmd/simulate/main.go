package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// The simulator hammers the booking endpoint with a deliberately small
// doctor/date/slot pool so concurrent workers contend for the same slots.
// Exactly one booking per slot should succeed; the rest should see 409s.

type SimConfig struct {
	APIBaseURL   string
	Duration     time.Duration
	Workers      int
	Days         int
	BookingRatio float64
	CancelRatio  float64
	ReadRatio    float64
}

type DataPool struct {
	Patients []string
	Doctors  []string
	Slots    []string

	mu           sync.RWMutex
	appointments []string
}

func (dp *DataPool) AddAppointment(id string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.appointments = append(dp.appointments, id)
}

func (dp *DataPool) RandomAppointment() (string, bool) {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	if len(dp.appointments) == 0 {
		return "", false
	}
	return dp.appointments[rand.Intn(len(dp.appointments))], true
}

type OperationMetrics struct {
	Total    int64
	Success  int64
	Conflict int64
	Error    int64

	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(latency time.Duration, success, conflict bool) {
	atomic.AddInt64(&om.Total, 1)
	switch {
	case success:
		atomic.AddInt64(&om.Success, 1)
	case conflict:
		atomic.AddInt64(&om.Conflict, 1)
	default:
		atomic.AddInt64(&om.Error, 1)
	}

	om.mu.Lock()
	om.latencies = append(om.latencies, latency)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (avg, min, max, p50, p95 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.latencies) == 0 {
		return 0, 0, 0, 0, 0
	}

	latencies := make([]time.Duration, len(om.latencies))
	copy(latencies, om.latencies)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]
	p50 = latencies[len(latencies)*50/100]
	p95Idx := len(latencies) * 95 / 100
	if p95Idx >= len(latencies) {
		p95Idx = len(latencies) - 1
	}
	p95 = latencies[p95Idx]

	return avg, min, max, p50, p95
}

type Metrics struct {
	Booking OperationMetrics
	Cancel  OperationMetrics
	Read    OperationMetrics
}

type Simulator struct {
	config  SimConfig
	pool    *DataPool
	client  *http.Client
	metrics Metrics
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("simulator starting")

	cfg := loadConfig()
	log.Printf("config: base_url=%s duration=%s workers=%d booking=%.2f cancel=%.2f read=%.2f",
		cfg.APIBaseURL, cfg.Duration, cfg.Workers, cfg.BookingRatio, cfg.CancelRatio, cfg.ReadRatio)

	client := &http.Client{Timeout: 10 * time.Second}

	pool, err := loadDataPool(client, cfg)
	if err != nil {
		log.Fatalf("load data pool: %v", err)
	}
	log.Printf("loaded: %d patients, %d doctors, %d slot labels",
		len(pool.Patients), len(pool.Doctors), len(pool.Slots))

	sim := &Simulator{config: cfg, pool: pool, client: client}
	sim.Run()
	sim.Report()
}

func loadConfig() SimConfig {
	return SimConfig{
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8080"),
		Duration:     getDuration("SIM_DURATION", 30*time.Second),
		Workers:      getInt("SIM_WORKERS", 16),
		Days:         getInt("SIM_DAYS", 3),
		BookingRatio: getFloat("SIM_BOOKING_RATIO", 0.6),
		CancelRatio:  getFloat("SIM_CANCEL_RATIO", 0.1),
		ReadRatio:    getFloat("SIM_READ_RATIO", 0.3),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

type listResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		ID    string   `json:"id"`
		Slots []string `json:"slots"`
	} `json:"data"`
}

// loadDataPool pulls ids from the API; run cmd/seed against the server first.
func loadDataPool(client *http.Client, cfg SimConfig) (*DataPool, error) {
	pool := &DataPool{}

	patients, err := fetchList(client, cfg.APIBaseURL+"/patients")
	if err != nil {
		return nil, err
	}
	for _, p := range patients.Data {
		pool.Patients = append(pool.Patients, p.ID)
	}

	doctors, err := fetchList(client, cfg.APIBaseURL+"/doctors")
	if err != nil {
		return nil, err
	}
	for _, d := range doctors.Data {
		pool.Doctors = append(pool.Doctors, d.ID)
		if len(pool.Slots) == 0 {
			pool.Slots = d.Slots
		}
	}

	if len(pool.Patients) == 0 || len(pool.Doctors) == 0 {
		return nil, fmt.Errorf("no patients or doctors registered; run cmd/seed first")
	}
	if len(pool.Slots) == 0 {
		pool.Slots = []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}
	}

	return pool, nil
}

func fetchList(client *http.Client, url string) (*listResponse, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var decoded listResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return &decoded, nil
}

func (s *Simulator) Run() {
	deadline := time.Now().Add(s.config.Duration)

	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)))

			for time.Now().Before(deadline) {
				roll := rng.Float64()
				switch {
				case roll < s.config.BookingRatio:
					s.book(rng)
				case roll < s.config.BookingRatio+s.config.CancelRatio:
					s.cancel()
				default:
					s.read(rng)
				}
			}
		}(i)
	}
	wg.Wait()
}

func (s *Simulator) book(rng *rand.Rand) {
	body := map[string]any{
		"patient_id": s.pool.Patients[rng.Intn(len(s.pool.Patients))],
		"doctor_id":  s.pool.Doctors[rng.Intn(len(s.pool.Doctors))],
		"date":       time.Now().AddDate(0, 0, 1+rng.Intn(s.config.Days)).Format("2006-01-02"),
		"time_slot":  s.pool.Slots[rng.Intn(len(s.pool.Slots))],
	}

	payload, _ := json.Marshal(body)

	start := time.Now()
	resp, err := s.client.Post(s.config.APIBaseURL+"/appointments", "application/json", bytes.NewReader(payload))
	latency := time.Since(start)

	if err != nil {
		s.metrics.Booking.Record(latency, false, false)
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var decoded struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil && decoded.Data.ID != "" {
			s.pool.AddAppointment(decoded.Data.ID)
		}
		s.metrics.Booking.Record(latency, true, false)
	case http.StatusConflict:
		s.metrics.Booking.Record(latency, false, true)
	default:
		s.metrics.Booking.Record(latency, false, false)
	}
}

func (s *Simulator) cancel() {
	id, ok := s.pool.RandomAppointment()
	if !ok {
		return
	}

	start := time.Now()
	resp, err := s.client.Post(s.config.APIBaseURL+"/appointments/"+id+"/cancel", "application/json", nil)
	latency := time.Since(start)

	if err != nil {
		s.metrics.Cancel.Record(latency, false, false)
		return
	}
	resp.Body.Close()

	s.metrics.Cancel.Record(latency, resp.StatusCode == http.StatusOK, false)
}

func (s *Simulator) read(rng *rand.Rand) {
	var url string
	if id, ok := s.pool.RandomAppointment(); ok && rng.Intn(2) == 0 {
		url = s.config.APIBaseURL + "/appointments/" + id
	} else {
		url = s.config.APIBaseURL + "/appointments?doctor_id=" + s.pool.Doctors[rng.Intn(len(s.pool.Doctors))]
	}

	start := time.Now()
	resp, err := s.client.Get(url)
	latency := time.Since(start)

	if err != nil {
		s.metrics.Read.Record(latency, false, false)
		return
	}
	resp.Body.Close()

	s.metrics.Read.Record(latency, resp.StatusCode == http.StatusOK, false)
}

func (s *Simulator) Report() {
	report := func(name string, om *OperationMetrics) {
		avg, min, max, p50, p95 := om.Stats()
		log.Printf("%-8s total=%d success=%d conflict=%d error=%d avg=%s min=%s max=%s p50=%s p95=%s",
			name,
			atomic.LoadInt64(&om.Total),
			atomic.LoadInt64(&om.Success),
			atomic.LoadInt64(&om.Conflict),
			atomic.LoadInt64(&om.Error),
			avg, min, max, p50, p95,
		)
	}

	log.Println("simulation finished")
	report("booking", &s.metrics.Booking)
	report("cancel", &s.metrics.Cancel)
	report("read", &s.metrics.Read)
}
