package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/multierr"

	log "github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrPatientExists   = errors.New("patient already exists")
	ErrSessionNotFound = errors.New("session not found")
)

// Store keeps the whole progress document in memory and writes it back to
// its medium after every mutation. All operations are safe for concurrent
// use; the document is guarded by a single mutex since it is small and
// every mutation rewrites it anyway.
type Store struct {
	mu     sync.Mutex
	medium Medium
	data   *progressData

	// Now is the clock used for timestamps and generated session IDs.
	// Swappable in tests.
	Now func() time.Time
}

// NewStore loads the saved document from the medium, falling back to the
// seed dataset when nothing is saved yet, the medium cannot be read, or
// the saved bytes do not parse. It never fails.
func NewStore(ctx context.Context, medium Medium) *Store {
	s := &Store{
		medium: medium,
		Now:    time.Now,
	}

	raw, err := medium.Read(ctx)
	switch {
	case errors.Is(err, ErrNoSavedData):
		log.Debugln("no saved progress data, seeding defaults")
		s.data = seedData(s.Now())
	case err != nil:
		log.Errorf("failed to read progress data, seeding defaults: %s", err)
		s.data = seedData(s.Now())
	default:
		var data progressData
		if err := json.Unmarshal(raw, &data); err != nil {
			log.Errorf("saved progress data unreadable, seeding defaults: %s", err)
			s.data = seedData(s.Now())
		} else {
			if data.Patients == nil {
				data.Patients = map[string]Patient{}
			}
			s.data = &data
		}
	}

	return s
}

// save stamps LastUpdated and writes the whole document to the medium.
// Callers hold s.mu. The in-memory state stays applied even when the
// write fails; the error is returned so callers can surface it.
func (s *Store) save(ctx context.Context) error {
	s.data.LastUpdated = s.Now()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress data: %w", err)
	}
	if err := s.medium.Write(ctx, raw); err != nil {
		return fmt.Errorf("persist progress data: %w", err)
	}
	return nil
}

// GetAllPatients returns all patients sorted by username.
func (s *Store) GetAllPatients(_ context.Context) []Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients := make([]Patient, 0, len(s.data.Patients))
	for _, p := range s.data.Patients {
		patients = append(patients, p)
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].Username < patients[j].Username
	})
	return patients
}

func (s *Store) GetPatient(_ context.Context, username string) (*Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.data.Patients[username]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return &p, nil
}

// AddPatient registers a new patient. JoinDate is set to today and
// LastSession starts empty regardless of what the caller sent.
func (s *Store) AddPatient(ctx context.Context, patient Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Patients[patient.Username]; ok {
		return ErrPatientExists
	}

	patient.JoinDate = NewDate(s.Now())
	patient.LastSession = nil
	s.data.Patients[patient.Username] = patient

	return s.save(ctx)
}

// UpdatePatient merges the set fields of the update into an existing
// patient. Unset fields keep their current values.
func (s *Store) UpdatePatient(ctx context.Context, username string, update PatientUpdate) (*Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.data.Patients[username]
	if !ok {
		return nil, ErrPatientNotFound
	}

	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Age != nil {
		p.Age = *update.Age
	}
	if update.Condition != nil {
		p.Condition = *update.Condition
	}
	if update.Therapist != nil {
		p.Therapist = *update.Therapist
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.Notes != nil {
		p.Notes = *update.Notes
	}

	s.data.Patients[username] = p

	if err := s.save(ctx); err != nil {
		return &p, err
	}
	return &p, nil
}

// AddSession appends a new session and returns its assigned ID. The ID is
// derived from the clock and bumped on collision so IDs stay unique and
// monotonic within one store. The owning patient's LastSession moves to
// the session date when the patient exists; an unknown username is
// accepted so the log can outlive patient records.
func (s *Store) AddSession(ctx context.Context, session Session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	id := now.UnixMilli()
	for s.sessionIDExists(strconv.FormatInt(id, 10)) {
		id++
	}
	session.ID = strconv.FormatInt(id, 10)
	session.Timestamp = now.UTC()
	if session.Date.IsZero() {
		session.Date = NewDate(now)
	}

	s.data.Sessions = append(s.data.Sessions, session)

	if p, ok := s.data.Patients[session.Username]; ok {
		d := session.Date
		p.LastSession = &d
		s.data.Patients[session.Username] = p
	}

	if err := s.save(ctx); err != nil {
		return session.ID, err
	}
	return session.ID, nil
}

func (s *Store) sessionIDExists(id string) bool {
	for i := range s.data.Sessions {
		if s.data.Sessions[i].ID == id {
			return true
		}
	}
	return false
}

// GetPatientSessions returns the patient's sessions, newest first.
func (s *Store) GetPatientSessions(_ context.Context, username string) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.patientSessionsLocked(username)
	SortNewestFirst(sessions)
	return sessions
}

// PatientSessionLog returns the patient's sessions in insertion order,
// i.e. the order they were recorded in. The stats engine depends on this
// ordering for its tie-breaks.
func (s *Store) PatientSessionLog(_ context.Context, username string) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patientSessionsLocked(username)
}

func (s *Store) patientSessionsLocked(username string) []Session {
	var sessions []Session
	for _, session := range s.data.Sessions {
		if session.Username == username {
			sessions = append(sessions, session)
		}
	}
	return sessions
}

// GetAllSessions returns every session, newest first.
func (s *Store) GetAllSessions(_ context.Context) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]Session, len(s.data.Sessions))
	copy(sessions, s.data.Sessions)
	SortNewestFirst(sessions)
	return sessions
}

// DeleteSession removes a session by ID. Returns false when no session
// with that ID exists; deleting twice is not an error.
func (s *Store) DeleteSession(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Sessions {
		if s.data.Sessions[i].ID == id {
			s.data.Sessions = append(s.data.Sessions[:i], s.data.Sessions[i+1:]...)
			if err := s.save(ctx); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Exercises returns the exercise catalog.
func (s *Store) Exercises(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercises := make([]string, len(s.data.Exercises))
	copy(exercises, s.data.Exercises)
	return exercises
}

// ExportSnapshot renders the whole document as indented JSON without
// touching it.
func (s *Store) ExportSnapshot(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal progress data: %w", err)
	}
	return raw, nil
}

// ImportSnapshot replaces the whole document with the given snapshot. The
// snapshot must be a JSON object carrying at least "patients" and
// "sessions"; anything else is rejected and the current document stays
// untouched.
func (s *Store) ImportSnapshot(ctx context.Context, raw []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	var validationErr error
	if _, ok := probe["patients"]; !ok {
		validationErr = multierr.Append(validationErr, errors.New("snapshot missing patients"))
	}
	if _, ok := probe["sessions"]; !ok {
		validationErr = multierr.Append(validationErr, errors.New("snapshot missing sessions"))
	}
	if validationErr != nil {
		return fmt.Errorf("invalid snapshot: %w", validationErr)
	}

	var data progressData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}
	if data.Patients == nil {
		data.Patients = map[string]Patient{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = &data
	return s.save(ctx)
}

// ClearAll resets the document back to the seed dataset.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = seedData(s.Now())
	return s.save(ctx)
}

// SystemStats reports document-level totals.
func (s *Store) SystemStats(_ context.Context) (*SystemStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(s.data)
	if err != nil {
		return nil, fmt.Errorf("marshal progress data: %w", err)
	}

	return &SystemStats{
		TotalPatients:  len(s.data.Patients),
		TotalSessions:  len(s.data.Sessions),
		TotalExercises: len(s.data.Exercises),
		LastUpdated:    s.data.LastUpdated,
		StorageSize:    len(raw),
	}, nil
}

// LastUpdated reports when the document last changed. The stats engine
// uses it as a cache invalidation stamp.
func (s *Store) LastUpdated(_ context.Context) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.LastUpdated
}
