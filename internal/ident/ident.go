package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Known identifier prefixes. The prefix is the only part of an id that is
// meaningful: the suffix is random and not contractually parseable.
const (
	PatientPrefix     = "PAT-"
	DoctorPrefix      = "DOC-"
	AppointmentPrefix = "APT-"
	ReportPrefix      = "RPT-"
)

// New returns a fresh identifier: the given prefix followed by the first
// eight hex characters of a random UUID, uppercased.
func New(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}

// HasPrefix reports whether id carries the given type prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix)
}
