package store

import (
	"sort"
	"time"
)

// Patient is a person receiving rehabilitation exercises, keyed by username.
type Patient struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Condition   string `json:"condition"`
	Therapist   string `json:"therapist"`
	JoinDate    Date   `json:"joinDate"`
	LastSession *Date  `json:"lastSession,omitempty"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

// Session is one recorded exercise occurrence with its measured outcomes.
// ID and Timestamp are assigned at insert and never change afterwards;
// a session is never edited in place, only deleted and recreated.
type Session struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Exercise   string    `json:"exercise"`
	Date       Date      `json:"date"`
	Duration   int       `json:"duration"` // minutes
	Reps       int       `json:"reps"`
	Sets       int       `json:"sets"`
	Accuracy   int       `json:"accuracy"`  // 0-100, exercise form quality
	Feedback   string    `json:"feedback"`
	PainLevel  int       `json:"painLevel"` // 1-5
	Difficulty string    `json:"difficulty"`
	Notes      string    `json:"notes"`
	Timestamp  time.Time `json:"timestamp"`
}

// PatientUpdate holds a field-level partial update of a patient.
// Nil fields are left untouched. Username, join date and last session
// date are not updatable through this path.
type PatientUpdate struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Therapist *string `json:"therapist,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// progressData is the whole-document root persisted to the medium and
// used as the export/import format.
type progressData struct {
	Patients    map[string]Patient `json:"patients"`
	Sessions    []Session          `json:"sessions"`
	Exercises   []string           `json:"exercises"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

type SystemStats struct {
	TotalPatients  int       `json:"totalPatients"`
	TotalSessions  int       `json:"totalSessions"`
	TotalExercises int       `json:"totalExercises"`
	LastUpdated    time.Time `json:"lastUpdated"`
	StorageSize    int       `json:"storageSize"`
}

// SortNewestFirst sorts sessions by date descending, in place. The sort is
// stable, so sessions sharing a date keep their insertion order.
func SortNewestFirst(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date.Time)
	})
}

// SortOldestFirst sorts sessions by date ascending, in place, stable.
func SortOldestFirst(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.Before(sessions[j].Date.Time)
	})
}
