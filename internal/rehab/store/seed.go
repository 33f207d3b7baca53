package store

import "time"

// seedData is the deterministic default dataset, used whenever the medium
// holds no saved document or the saved document cannot be parsed.
func seedData(now time.Time) *progressData {
	return &progressData{
		Patients: map[string]Patient{
			"rubi": {
				Username:    "rubi",
				Name:        "Rubi Rahman",
				Age:         45,
				Condition:   "Post Shoulder Surgery",
				Therapist:   "Dr. Ahmed",
				JoinDate:    MustParseDate("2024-01-15"),
				LastSession: seedDate("2024-03-10"),
				Phone:       "01712345678",
				Notes:       "Needs gentle exercises",
			},
			"maliha": {
				Username:    "maliha",
				Name:        "Maliha Khan",
				Age:         32,
				Condition:   "Knee Rehabilitation",
				Therapist:   "Dr. Fatima",
				JoinDate:    MustParseDate("2024-02-10"),
				LastSession: seedDate("2024-03-08"),
				Phone:       "01787654321",
				Notes:       "Good progress with leg exercises",
			},
			"sagor": {
				Username:    "sagor",
				Name:        "Sagor Das",
				Age:         50,
				Condition:   "Lower Back Pain",
				Therapist:   "Dr. Rahman",
				JoinDate:    MustParseDate("2024-01-20"),
				LastSession: seedDate("2024-03-05"),
				Phone:       "01811223344",
				Notes:       "Avoid heavy lifting",
			},
		},
		Sessions: []Session{
			{
				ID:         "1",
				Username:   "rubi",
				Exercise:   "Shoulder Rotations",
				Date:       MustParseDate("2024-03-01"),
				Duration:   15,
				Reps:       20,
				Sets:       3,
				Accuracy:   85,
				Feedback:   "Good form, keep elbows straight",
				PainLevel:  2,
				Difficulty: "Medium",
				Notes:      "Completed all sets",
				Timestamp:  MustParseDate("2024-03-01").Time,
			},
			{
				ID:         "2",
				Username:   "rubi",
				Exercise:   "Arm Raises",
				Date:       MustParseDate("2024-03-03"),
				Duration:   20,
				Reps:       15,
				Sets:       3,
				Accuracy:   90,
				Feedback:   "Excellent range of motion",
				PainLevel:  1,
				Difficulty: "Easy",
				Notes:      "Pain reduced from last session",
				Timestamp:  MustParseDate("2024-03-03").Time,
			},
			{
				ID:         "3",
				Username:   "maliha",
				Exercise:   "Leg Lifts",
				Date:       MustParseDate("2024-03-02"),
				Duration:   25,
				Reps:       12,
				Sets:       4,
				Accuracy:   78,
				Feedback:   "Knee slightly bent, needs correction",
				PainLevel:  3,
				Difficulty: "Hard",
				Notes:      "Use support next time",
				Timestamp:  MustParseDate("2024-03-02").Time,
			},
			{
				ID:         "4",
				Username:   "sagor",
				Exercise:   "Back Extensions",
				Date:       MustParseDate("2024-03-01"),
				Duration:   18,
				Reps:       10,
				Sets:       3,
				Accuracy:   82,
				Feedback:   "Good posture maintained",
				PainLevel:  2,
				Difficulty: "Medium",
				Notes:      "Feeling improvement",
				Timestamp:  MustParseDate("2024-03-01").Time,
			},
			{
				ID:         "5",
				Username:   "rubi",
				Exercise:   "Shoulder Press",
				Date:       MustParseDate("2024-03-10"),
				Duration:   22,
				Reps:       18,
				Sets:       3,
				Accuracy:   92,
				Feedback:   "Best session so far!",
				PainLevel:  1,
				Difficulty: "Medium",
				Notes:      "Can increase weight slightly",
				Timestamp:  MustParseDate("2024-03-10").Time,
			},
		},
		Exercises: []string{
			"Shoulder Rotations",
			"Arm Raises",
			"Leg Lifts",
			"Back Extensions",
			"Shoulder Press",
			"Knee Bends",
			"Neck Stretches",
			"Walking",
			"Squats",
			"Arm Curls",
		},
		LastUpdated: now,
	}
}

func seedDate(value string) *Date {
	d := MustParseDate(value)
	return &d
}
