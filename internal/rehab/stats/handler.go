package stats

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/rehabtrack/internal/telemetry/tracing"
	"github.com/2beens/rehabtrack/pkg"
)

const (
	cacheSizeBytes  = 10 * 1024 * 1024
	cacheTTLSeconds = 300
)

// Handler serves computed patient stats and chart series. Responses are
// cached with the document's last change stamp baked into the key, so a
// mutation naturally misses the cache and triggers a recompute.
type Handler struct {
	analyzer *Analyzer
	store    statsStore
	cache    *freecache.Cache
}

func NewHandler(store statsStore) *Handler {
	return &Handler{
		analyzer: NewAnalyzer(store),
		store:    store,
		cache:    freecache.NewCache(cacheSizeBytes),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/patients/{username}/stats", handler.HandlePatientStats).Methods("GET", "OPTIONS")
	router.HandleFunc("/patients/{username}/chart", handler.HandleChartSeries).Methods("GET", "OPTIONS")
}

func (handler *Handler) HandlePatientStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.stats.patient")
	defer span.End()

	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}

	cacheKey := handler.cacheKey(r, "stats", username, "")
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	stats := handler.analyzer.PatientStats(ctx, username)

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal patient stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, statsJson, cacheTTLSeconds); err != nil {
		log.Tracef("failed to cache patient stats for %s: %s", username, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleChartSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rehab.stats.chart")
	defer span.End()

	vars := mux.Vars(r)
	username := vars["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	exerciseFilter := r.URL.Query().Get("exercise")

	cacheKey := handler.cacheKey(r, "chart", username, exerciseFilter)
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	series := handler.analyzer.ChartSeries(ctx, username, exerciseFilter)

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("failed to marshal chart series: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, seriesJson, cacheTTLSeconds); err != nil {
		log.Tracef("failed to cache chart series for %s: %s", username, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seriesJson, http.StatusOK)
}

// cacheKey includes the document's last change stamp, so stale entries
// are never served after a mutation.
func (handler *Handler) cacheKey(r *http.Request, kind, username, filter string) []byte {
	lastUpdated := handler.store.LastUpdated(r.Context())
	return []byte(fmt.Sprintf("%s|%s|%s|%d", kind, username, filter, lastUpdated.UnixNano()))
}
