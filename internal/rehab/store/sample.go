package store

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	sampleSessionsCount = 8
	sampleSpanWeeks     = 4
)

// SampleGenerator produces demo sessions for a patient, spread over the
// last few weeks with accuracy trending up and pain trending down. Handy
// for demos and for exercising the stats engine with non-trivial data.
type SampleGenerator struct {
	faker *gofakeit.Faker
	store *Store
}

// NewSampleGenerator returns a generator seeded for reproducible output.
// Seed 0 gives a random sequence.
func NewSampleGenerator(seed int64, store *Store) *SampleGenerator {
	return &SampleGenerator{
		faker: gofakeit.New(seed),
		store: store,
	}
}

// GenerateSampleSessions adds sampleSessionsCount sessions for the given
// patient, oldest first, and returns the assigned IDs.
func (g *SampleGenerator) GenerateSampleSessions(ctx context.Context, username string) ([]string, error) {
	s := g.store
	if _, err := s.GetPatient(ctx, username); err != nil {
		return nil, err
	}

	exercises := s.Exercises(ctx)
	if len(exercises) == 0 {
		exercises = []string{"Walking"}
	}

	now := s.Now()
	span := sampleSpanWeeks * 7 * 24 * time.Hour
	step := span / sampleSessionsCount

	ids := make([]string, 0, sampleSessionsCount)
	for i := 0; i < sampleSessionsCount; i++ {
		date := now.Add(-span + time.Duration(i+1)*step)

		accuracy := g.faker.Number(65, 85) + i*3
		if accuracy > 98 {
			accuracy = 98
		}
		painLevel := 5 - i/2
		if painLevel < 1 {
			painLevel = 1
		}

		session := Session{
			Username:   username,
			Exercise:   g.faker.RandomString(exercises),
			Date:       NewDate(date),
			Duration:   g.faker.Number(10, 30),
			Reps:       g.faker.Number(8, 25),
			Sets:       g.faker.Number(2, 4),
			Accuracy:   accuracy,
			Feedback:   g.faker.RandomString(sampleFeedback),
			PainLevel:  painLevel,
			Difficulty: g.faker.RandomString(sampleDifficulties),
			Notes:      "Sample session",
		}

		id, err := s.AddSession(ctx, session)
		if err != nil {
			return ids, fmt.Errorf("add sample session %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

var sampleFeedback = []string{
	"Good form throughout",
	"Slight fatigue near the end",
	"Range of motion improving",
	"Keep movements slow and controlled",
	"Excellent effort",
}

var sampleDifficulties = []string{"Easy", "Medium", "Hard"}
