package store_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/rehabtrack/internal/auth"
	"github.com/2beens/rehabtrack/internal/middleware"
	"github.com/2beens/rehabtrack/internal/rehab/store"
	"github.com/2beens/rehabtrack/internal/telemetry/metrics"
)

type handlerTestSetup struct {
	storeMock *MockprogressStore
	genMock   *MocksessionsGenerator
	handler   *store.Handler
	router    *mux.Router
}

func newHandlerTestSetup(t *testing.T) *handlerTestSetup {
	t.Helper()
	ctrl := gomock.NewController(t)
	storeMock := NewMockprogressStore(ctrl)
	genMock := NewMocksessionsGenerator(ctrl)
	handler := store.NewHandler(storeMock, genMock, metrics.NewTestManager())
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return &handlerTestSetup{
		storeMock: storeMock,
		genMock:   genMock,
		handler:   handler,
		router:    router,
	}
}

func therapistRequest(r *http.Request) *http.Request {
	return r.WithContext(middleware.ContextWithSession(r.Context(), &auth.LoginSession{
		Token:    "test-token",
		Username: "sagordas",
		Role:     auth.RoleTherapist,
	}))
}

func patientRequest(r *http.Request) *http.Request {
	return r.WithContext(middleware.ContextWithSession(r.Context(), &auth.LoginSession{
		Token:    "test-token",
		Username: "rubi",
		Role:     auth.RolePatient,
	}))
}

func TestHandler_GetPatients(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		GetAllPatients(gomock.Any()).
		Return([]store.Patient{
			{Username: "maliha", Name: "Maliha Khan"},
			{Username: "rubi", Name: "Rubi Rahman"},
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/patients", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var patients []store.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patients))
	require.Len(t, patients, 2)
	assert.Equal(t, "maliha", patients[0].Username)
}

func TestHandler_GetPatient(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		GetPatient(gomock.Any(), "rubi").
		Return(&store.Patient{Username: "rubi", Name: "Rubi Rahman"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/patients/rubi", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var patient store.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patient))
	assert.Equal(t, "Rubi Rahman", patient.Name)
}

func TestHandler_GetPatient_NotFound(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		GetPatient(gomock.Any(), "nobody").
		Return(nil, store.ErrPatientNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/patients/nobody", nil)
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AddPatient(t *testing.T) {
	s := newHandlerTestSetup(t)

	newPatient := store.Patient{
		Username:  "karim",
		Name:      "Karim Uddin",
		Age:       61,
		Condition: "Hip Replacement Recovery",
	}
	patientJson, err := json.Marshal(newPatient)
	require.NoError(t, err)

	s.storeMock.EXPECT().
		AddPatient(gomock.Any(), newPatient).
		Return(nil)
	s.storeMock.EXPECT().
		GetPatient(gomock.Any(), "karim").
		Return(&newPatient, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/patients", bytes.NewReader(patientJson))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, therapistRequest(req))

	require.Equal(t, http.StatusCreated, rec.Code)
	var added store.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, "karim", added.Username)
}

func TestHandler_AddPatient_RoleChecks(t *testing.T) {
	s := newHandlerTestSetup(t)

	patientJson, err := json.Marshal(store.Patient{Username: "karim", Name: "Karim Uddin"})
	require.NoError(t, err)

	// no session at all
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/patients", bytes.NewReader(patientJson))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// logged in, but as a patient
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/patients", bytes.NewReader(patientJson))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, patientRequest(req))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_AddPatient_Conflict(t *testing.T) {
	s := newHandlerTestSetup(t)

	patientJson, err := json.Marshal(store.Patient{Username: "rubi", Name: "Rubi Rahman"})
	require.NoError(t, err)

	s.storeMock.EXPECT().
		AddPatient(gomock.Any(), gomock.Any()).
		Return(store.ErrPatientExists)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/patients", bytes.NewReader(patientJson))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, therapistRequest(req))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_UpdatePatient(t *testing.T) {
	s := newHandlerTestSetup(t)

	newAge := 46
	updateJson, err := json.Marshal(store.PatientUpdate{Age: &newAge})
	require.NoError(t, err)

	s.storeMock.EXPECT().
		UpdatePatient(gomock.Any(), "rubi", store.PatientUpdate{Age: &newAge}).
		Return(&store.Patient{Username: "rubi", Name: "Rubi Rahman", Age: 46}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/patients/rubi", bytes.NewReader(updateJson))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, therapistRequest(req))

	require.Equal(t, http.StatusOK, rec.Code)
	var updated store.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 46, updated.Age)
}

func TestHandler_AddSession(t *testing.T) {
	s := newHandlerTestSetup(t)

	session := store.Session{
		Username: "rubi",
		Exercise: "Walking",
		Date:     store.MustParseDate("2024-04-01"),
		Accuracy: 91,
	}
	sessionJson, err := json.Marshal(session)
	require.NoError(t, err)

	s.storeMock.EXPECT().
		AddSession(gomock.Any(), session).
		Return("1712000000000", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sessions", bytes.NewReader(sessionJson))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, patientRequest(req))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp store.AddSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1712000000000", resp.AddedID)
}

func TestHandler_AddSession_BadRequest(t *testing.T) {
	s := newHandlerTestSetup(t)

	// missing content type
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sessions", strings.NewReader("{}"))
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// missing username and exercise
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/sessions", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteSession(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		DeleteSession(gomock.Any(), "5").
		Return(true, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/sessions/5", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp store.DeleteSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "5", resp.DeletedID)
}

func TestHandler_DeleteSession_NotFound(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		DeleteSession(gomock.Any(), "999").
		Return(false, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/sessions/999", nil)
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Export(t *testing.T) {
	s := newHandlerTestSetup(t)

	snapshot := []byte(`{"patients": {}, "sessions": []}`)
	s.storeMock.EXPECT().
		ExportSnapshot(gomock.Any()).
		Return(snapshot, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/data/export", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, snapshot, rec.Body.Bytes())
}

func TestHandler_Import(t *testing.T) {
	s := newHandlerTestSetup(t)

	snapshot := []byte(`{"patients": {}, "sessions": []}`)
	s.storeMock.EXPECT().
		ImportSnapshot(gomock.Any(), snapshot).
		Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/data/import", bytes.NewReader(snapshot))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, therapistRequest(req))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Import_InvalidSnapshot(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		ImportSnapshot(gomock.Any(), gomock.Any()).
		Return(store.ErrPatientNotFound) // any error leads to a 400

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/data/import", strings.NewReader(`{"foo": []}`))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(rec, therapistRequest(req))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Clear(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		ClearAll(gomock.Any()).
		Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/data/clear", nil)
	s.router.ServeHTTP(rec, therapistRequest(req))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GenerateSampleSessions(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.genMock.EXPECT().
		GenerateSampleSessions(gomock.Any(), "maliha").
		Return([]string{"10", "11", "12"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/patients/maliha/sample", nil)
	s.router.ServeHTTP(rec, therapistRequest(req))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp store.SampleSessionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "maliha", resp.Username)
	assert.Len(t, resp.AddedIDs, 3)
}

func TestHandler_SystemStats(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		SystemStats(gomock.Any()).
		Return(&store.SystemStats{
			TotalPatients:  3,
			TotalSessions:  5,
			TotalExercises: 10,
			StorageSize:    2048,
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/system/stats", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats store.SystemStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalPatients)
	assert.Equal(t, 5, stats.TotalSessions)
}

func TestHandler_GetExercises(t *testing.T) {
	s := newHandlerTestSetup(t)

	s.storeMock.EXPECT().
		Exercises(gomock.Any()).
		Return([]string{"Walking", "Squats"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/exercises", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var exercises []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercises))
	assert.Equal(t, []string{"Walking", "Squats"}, exercises)
}
