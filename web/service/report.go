package service

import (
	"fittrack/database/model"
)

// Report is a derived projection of a user's workouts and goals for charting.
// Dates, Durations and Intensities are index-aligned, one element per workout.
// It is recomputed on every call and never persisted.
type Report struct {
	Workouts    []model.Workout
	Goals       []model.Goal
	Dates       []string
	Durations   []float64
	Intensities []string
}

type ReportService struct {
	workoutService WorkoutService
	goalService    GoalService
}

// Build fetches the owner's workouts and goals ascending by date and projects
// the workouts into parallel chart series.
func (s *ReportService) Build(userId string) (*Report, error) {
	workouts, err := s.workoutService.GetByUser(userId, true)
	if err != nil {
		return nil, err
	}
	goals, err := s.goalService.GetByUser(userId, true)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Workouts:    workouts,
		Goals:       goals,
		Dates:       make([]string, 0, len(workouts)),
		Durations:   make([]float64, 0, len(workouts)),
		Intensities: make([]string, 0, len(workouts)),
	}
	for _, workout := range workouts {
		report.Dates = append(report.Dates, workout.LoggedAt.Format("2006-01-02"))
		report.Durations = append(report.Durations, workout.Duration)
		report.Intensities = append(report.Intensities, workout.Intensity)
	}
	return report, nil
}
