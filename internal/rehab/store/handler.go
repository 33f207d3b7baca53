package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/rehabtrack/internal/auth"
	"github.com/2beens/rehabtrack/internal/middleware"
	"github.com/2beens/rehabtrack/internal/telemetry/metrics"
	"github.com/2beens/rehabtrack/internal/telemetry/tracing"
	"github.com/2beens/rehabtrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=store_test

type progressStore interface {
	GetAllPatients(ctx context.Context) []Patient
	GetPatient(ctx context.Context, username string) (*Patient, error)
	AddPatient(ctx context.Context, patient Patient) error
	UpdatePatient(ctx context.Context, username string, update PatientUpdate) (*Patient, error)
	AddSession(ctx context.Context, session Session) (string, error)
	GetPatientSessions(ctx context.Context, username string) []Session
	GetAllSessions(ctx context.Context) []Session
	DeleteSession(ctx context.Context, id string) (bool, error)
	Exercises(ctx context.Context) []string
	ExportSnapshot(ctx context.Context) ([]byte, error)
	ImportSnapshot(ctx context.Context, raw []byte) error
	ClearAll(ctx context.Context) error
	SystemStats(ctx context.Context) (*SystemStats, error)
}

type sessionsGenerator interface {
	GenerateSampleSessions(ctx context.Context, username string) ([]string, error)
}

type AddSessionResponse struct {
	AddedID string `json:"addedId"`
}

type DeleteSessionResponse struct {
	DeletedID string `json:"deletedId"`
}

type SampleSessionsResponse struct {
	Username string   `json:"username"`
	AddedIDs []string `json:"addedIds"`
}

type Handler struct {
	store     progressStore
	sampleGen sessionsGenerator
	metrics   *metrics.Manager
}

func NewHandler(store progressStore, sampleGen sessionsGenerator, metrics *metrics.Manager) *Handler {
	return &Handler{
		store:     store,
		sampleGen: sampleGen,
		metrics:   metrics,
	}
}

// SetupRoutes mounts all progress store routes on the given subrouter.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/patients", handler.HandleGetPatients).Methods("GET", "OPTIONS")
	router.HandleFunc("/patients", handler.HandleAddPatient).Methods("POST", "OPTIONS")
	router.HandleFunc("/patients/{username}", handler.HandleGetPatient).Methods("GET", "OPTIONS")
	router.HandleFunc("/patients/{username}", handler.HandleUpdatePatient).Methods("PUT", "OPTIONS")
	router.HandleFunc("/patients/{username}/sessions", handler.HandleGetPatientSessions).Methods("GET", "OPTIONS")
	router.HandleFunc("/patients/{username}/sample", handler.HandleGenerateSampleSessions).Methods("POST", "OPTIONS")
	router.HandleFunc("/sessions", handler.HandleAddSession).Methods("POST", "OPTIONS")
	router.HandleFunc("/sessions", handler.HandleGetSessions).Methods("GET", "OPTIONS")
	router.HandleFunc("/sessions/{id}", handler.HandleDeleteSession).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/exercises", handler.HandleGetExercises).Methods("GET", "OPTIONS")
	router.HandleFunc("/data/export", handler.HandleExport).Methods("GET", "OPTIONS")
	router.HandleFunc("/data/import", handler.HandleImport).Methods("POST", "OPTIONS")
	router.HandleFunc("/data/clear", handler.HandleClear).Methods("POST", "OPTIONS")
	router.HandleFunc("/system/stats", handler.HandleSystemStats).Methods("GET", "OPTIONS")
}

// requireTherapist checks that the logged-in user carries the therapist
// role. Patient accounts can read everything but only therapists manage
// patient records and the whole document.
func requireTherapist(w http.ResponseWriter, r *http.Request) bool {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return false
	}
	if session.Role != auth.RoleTherapist {
		http.Error(w, "therapist role required", http.StatusForbidden)
		return false
	}
	return true
}

func (handler *Handler) HandleGetPatients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.patients.list")
	defer span.End()

	patients := handler.store.GetAllPatients(ctx)

	patientsJson, err := json.Marshal(patients)
	if err != nil {
		log.Errorf("failed to marshal patients: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, patientsJson, http.StatusOK)
}

func (handler *Handler) HandleGetPatient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.patients.get")
	defer span.End()

	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}

	patient, err := handler.store.GetPatient(ctx, username)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get patient %s: %s", username, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	patientJson, err := json.Marshal(patient)
	if err != nil {
		log.Errorf("failed to marshal patient: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, patientJson, http.StatusOK)
}

func (handler *Handler) HandleAddPatient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.patients.add")
	defer span.End()

	if !requireTherapist(w, r) {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var patient Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		log.Tracef("add patient, unmarshal json params: %s", err)
		http.Error(w, "add patient failed", http.StatusBadRequest)
		return
	}

	if patient.Username == "" || patient.Name == "" {
		http.Error(w, "error, username or name empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.AddPatient(ctx, patient); err != nil {
		if errors.Is(err, ErrPatientExists) {
			http.Error(w, "patient already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add patient [%s]: %s", patient.Username, err)
		http.Error(w, "error, failed to add patient", http.StatusInternalServerError)
		return
	}

	added, err := handler.store.GetPatient(ctx, patient.Username)
	if err != nil {
		log.Errorf("failed to get added patient %s: %s", patient.Username, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal added patient: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new patient added: %s", patient.Username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.patients.update")
	defer span.End()

	if !requireTherapist(w, r) {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}

	var update PatientUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update patient, unmarshal json params: %s", err)
		http.Error(w, "update patient failed", http.StatusBadRequest)
		return
	}

	updated, err := handler.store.UpdatePatient(ctx, username, update)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update patient [%s]: %s", username, err)
		http.Error(w, "error, failed to update patient", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("failed to marshal updated patient: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("patient updated: %s", username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

func (handler *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.sessions.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("add session, unmarshal json params: %s", err)
		http.Error(w, "add session failed", http.StatusBadRequest)
		return
	}

	if session.Username == "" || session.Exercise == "" {
		http.Error(w, "error, username or exercise empty", http.StatusBadRequest)
		return
	}

	addedID, err := handler.store.AddSession(ctx, session)
	if err != nil {
		log.Errorf("failed to add session for [%s]: %s", session.Username, err)
		http.Error(w, "error, failed to add session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsAdded.Inc()

	addRespJson, err := json.Marshal(AddSessionResponse{AddedID: addedID})
	if err != nil {
		log.Errorf("failed to marshal add session response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new session added: %s [%s]", addedID, session.Username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addRespJson, http.StatusCreated)
}

func (handler *Handler) HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.sessions.list")
	defer span.End()

	sessions := handler.store.GetAllSessions(ctx)

	sessionsJson, err := json.Marshal(sessions)
	if err != nil {
		log.Errorf("failed to marshal sessions: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionsJson, http.StatusOK)
}

func (handler *Handler) HandleGetPatientSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.sessions.patient")
	defer span.End()

	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}

	sessions := handler.store.GetPatientSessions(ctx, username)

	sessionsJson, err := json.Marshal(sessions)
	if err != nil {
		log.Errorf("failed to marshal patient sessions: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionsJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.sessions.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	deleted, err := handler.store.DeleteSession(ctx, id)
	if err != nil {
		log.Errorf("failed to delete session %s: %s", id, err)
		http.Error(w, "session not deleted", http.StatusInternalServerError)
		return
	}
	if !deleted {
		log.Debugf("session %s not found", id)
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	handler.metrics.CounterSessionsDeleted.Inc()

	deleteRespJson, err := json.Marshal(DeleteSessionResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleGetExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.exercises")
	defer span.End()

	exercises := handler.store.Exercises(ctx)

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.data.export")
	defer span.End()

	snapshot, err := handler.store.ExportSnapshot(ctx)
	if err != nil {
		log.Errorf("failed to export progress data: %s", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="rehab-progress.json"`)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapshot, http.StatusOK)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.data.import")
	defer span.End()

	if !requireTherapist(w, r) {
		return
	}

	raw, err := snapshotFromRequest(r)
	if err != nil {
		log.Tracef("import snapshot, read body: %s", err)
		http.Error(w, "import failed, cannot read snapshot", http.StatusBadRequest)
		return
	}

	if err := handler.store.ImportSnapshot(ctx, raw); err != nil {
		log.Errorf("failed to import snapshot: %s", err)
		http.Error(w, fmt.Sprintf("import failed: %s", err), http.StatusBadRequest)
		return
	}

	handler.metrics.CounterSnapshotImports.Inc()

	log.Debugf("snapshot imported, %d bytes", len(raw))
	pkg.WriteTextResponseOK(w, "imported")
}

// snapshotFromRequest accepts the snapshot either as a multipart upload
// in the "file" field or as the raw request body.
func snapshotFromRequest(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("read form file: %w", err)
		}
		defer file.Close()
		return io.ReadAll(file)
	}
	return io.ReadAll(r.Body)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.data.clear")
	defer span.End()

	if !requireTherapist(w, r) {
		return
	}

	if err := handler.store.ClearAll(ctx); err != nil {
		log.Errorf("failed to clear progress data: %s", err)
		http.Error(w, "clear failed", http.StatusInternalServerError)
		return
	}

	log.Debugln("progress data cleared, defaults restored")
	pkg.WriteTextResponseOK(w, "cleared")
}

func (handler *Handler) HandleGenerateSampleSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.sample")
	defer span.End()

	if !requireTherapist(w, r) {
		return
	}

	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}

	addedIDs, err := handler.sampleGen.GenerateSampleSessions(ctx, username)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to generate sample sessions for %s: %s", username, err)
		http.Error(w, "failed to generate sample sessions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SampleSessionsResponse{
		Username: username,
		AddedIDs: addedIDs,
	})
	if err != nil {
		log.Errorf("failed to marshal sample sessions response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("generated %d sample sessions for %s", len(addedIDs), username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.system.stats")
	defer span.End()

	stats, err := handler.store.SystemStats(ctx)
	if err != nil {
		log.Errorf("failed to get system stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal system stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}
