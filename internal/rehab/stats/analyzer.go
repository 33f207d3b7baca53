package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/rehabtrack/internal/rehab/store"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

// progressTrendWindow is how many of the most recent sessions feed the
// accuracy trend.
const progressTrendWindow = 5

type statsStore interface {
	PatientSessionLog(ctx context.Context, username string) []store.Session
	LastUpdated(ctx context.Context) time.Time
}

// PatientStats is the aggregate picture of one patient's recovery,
// recomputed on demand from the session log.
type PatientStats struct {
	TotalSessions    int         `json:"totalSessions"`
	TotalReps        int         `json:"totalReps"`
	TotalDuration    int         `json:"totalDuration"` // minutes
	AvgAccuracy      float64     `json:"avgAccuracy"`
	AvgPainLevel     float64     `json:"avgPainLevel"`
	ExercisesCount   int         `json:"exercisesCount"`
	ProgressTrend    float64     `json:"progressTrend"` // percent accuracy change over recent sessions
	LastSessionDate  *store.Date `json:"lastSessionDate"`
	Consistency      float64     `json:"consistency"` // sessions per week
	FavoriteExercise string      `json:"favoriteExercise"`
}

// ChartSeries holds per-session series aligned by index, oldest first,
// ready for plotting.
type ChartSeries struct {
	Labels    []string     `json:"labels"` // day/month
	Accuracy  []int        `json:"accuracy"`
	Reps      []int        `json:"reps"`
	Duration  []int        `json:"duration"`
	PainLevel []int        `json:"painLevel"`
	Dates     []store.Date `json:"dates"`
}

type Analyzer struct {
	store statsStore
}

func NewAnalyzer(store statsStore) *Analyzer {
	return &Analyzer{store: store}
}

// PatientStats computes the patient's aggregate stats. A patient with no
// sessions gets all zeroes and no favorite exercise.
func (a *Analyzer) PatientStats(ctx context.Context, username string) *PatientStats {
	sessions := a.store.PatientSessionLog(ctx, username)
	if len(sessions) == 0 {
		return &PatientStats{FavoriteExercise: "None"}
	}

	store.SortNewestFirst(sessions)

	var totalReps, totalDuration, accuracySum, painSum int
	uniqueExercises := map[string]struct{}{}
	for _, s := range sessions {
		totalReps += s.Reps
		totalDuration += s.Duration
		accuracySum += s.Accuracy
		painSum += s.PainLevel
		uniqueExercises[s.Exercise] = struct{}{}
	}
	totalSessions := len(sessions)

	// accuracy change across the most recent sessions, as a percentage
	// of where the window started
	var progressTrend float64
	recent := sessions
	if len(recent) > progressTrendWindow {
		recent = recent[:progressTrendWindow]
	}
	if len(recent) >= 2 {
		newest := recent[0].Accuracy
		oldest := recent[len(recent)-1].Accuracy
		if oldest > 0 {
			progressTrend = float64(newest-oldest) / float64(oldest) * 100
		}
	}

	// sessions per week over the span between first and last session;
	// span shorter than a week counts as a full week
	firstDate := sessions[len(sessions)-1].Date
	lastDate := sessions[0].Date
	weeks := lastDate.Sub(firstDate.Time).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	consistency := float64(totalSessions) / weeks

	lastSessionDate := sessions[0].Date

	return &PatientStats{
		TotalSessions:    totalSessions,
		TotalReps:        totalReps,
		TotalDuration:    totalDuration,
		AvgAccuracy:      round1(float64(accuracySum) / float64(totalSessions)),
		AvgPainLevel:     round1(float64(painSum) / float64(totalSessions)),
		ExercisesCount:   len(uniqueExercises),
		ProgressTrend:    round1(progressTrend),
		LastSessionDate:  &lastSessionDate,
		Consistency:      round1(consistency),
		FavoriteExercise: favoriteExercise(sessions),
	}
}

// favoriteExercise is the most frequent exercise; on a tie the one
// encountered first in the given ordering wins.
func favoriteExercise(sessions []store.Session) string {
	if len(sessions) == 0 {
		return "None"
	}

	counts := map[string]int{}
	var order []string
	for _, s := range sessions {
		if _, seen := counts[s.Exercise]; !seen {
			order = append(order, s.Exercise)
		}
		counts[s.Exercise]++
	}

	favorite := order[0]
	for _, exercise := range order[1:] {
		if counts[exercise] > counts[favorite] {
			favorite = exercise
		}
	}
	return favorite
}

// ChartSeries builds plottable per-session series for the patient,
// oldest session first, optionally narrowed down to a single exercise.
func (a *Analyzer) ChartSeries(ctx context.Context, username, exerciseFilter string) *ChartSeries {
	sessions := a.store.PatientSessionLog(ctx, username)

	if exerciseFilter != "" {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.Exercise == exerciseFilter {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	store.SortOldestFirst(sessions)

	series := &ChartSeries{
		Labels:    make([]string, 0, len(sessions)),
		Accuracy:  make([]int, 0, len(sessions)),
		Reps:      make([]int, 0, len(sessions)),
		Duration:  make([]int, 0, len(sessions)),
		PainLevel: make([]int, 0, len(sessions)),
		Dates:     make([]store.Date, 0, len(sessions)),
	}
	for _, s := range sessions {
		series.Labels = append(series.Labels, fmt.Sprintf("%d/%d", s.Date.Day(), int(s.Date.Month())))
		series.Accuracy = append(series.Accuracy, s.Accuracy)
		series.Reps = append(series.Reps, s.Reps)
		series.Duration = append(series.Duration, s.Duration)
		series.PainLevel = append(series.PainLevel, s.PainLevel)
		series.Dates = append(series.Dates, s.Date)
	}
	return series
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
