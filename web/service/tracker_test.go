package service

import (
	"testing"
	"time"

	"fittrack/database"
	"fittrack/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertWorkout(t *testing.T, userId string, workoutType string, duration float64, intensity string, loggedAt time.Time) {
	t.Helper()
	workout := &model.Workout{
		UserId:    userId,
		Type:      workoutType,
		Duration:  duration,
		Intensity: intensity,
		LoggedAt:  loggedAt,
	}
	require.NoError(t, database.GetDB().Create(workout).Error)
}

func TestWorkoutAddAndList(t *testing.T) {
	setupTestDB(t)

	workoutService := WorkoutService{}

	workout, err := workoutService.Add("owner-a", "run", 30, "high", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, workout.Id)
	assert.False(t, workout.LoggedAt.IsZero())

	workouts, err := workoutService.GetByUser("owner-a", true)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "run", workouts[0].Type)
	assert.Equal(t, 30.0, workouts[0].Duration)
	assert.Equal(t, "high", workouts[0].Intensity)
	assert.Equal(t, 5.0, workouts[0].Distance)
}

func TestWorkoutListOrderAndScope(t *testing.T) {
	setupTestDB(t)

	workoutService := WorkoutService{}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	insertWorkout(t, "owner-a", "swim", 45, "medium", base.AddDate(0, 0, 2))
	insertWorkout(t, "owner-a", "run", 30, "high", base)
	insertWorkout(t, "owner-b", "bike", 60, "low", base.AddDate(0, 0, 1))

	ascending, err := workoutService.GetByUser("owner-a", true)
	require.NoError(t, err)
	require.Len(t, ascending, 2)
	assert.Equal(t, "run", ascending[0].Type)
	assert.Equal(t, "swim", ascending[1].Type)

	descending, err := workoutService.GetByUser("owner-a", false)
	require.NoError(t, err)
	require.Len(t, descending, 2)
	assert.Equal(t, "swim", descending[0].Type)

	// owners never see each other's entries
	other, err := workoutService.GetByUser("owner-b", true)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "bike", other[0].Type)

	none, err := workoutService.GetByUser("owner-c", true)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGoalLifecycle(t *testing.T) {
	setupTestDB(t)

	goalService := GoalService{}

	goal, err := goalService.Create("owner-a", "run 5k")
	require.NoError(t, err)
	assert.NotEmpty(t, goal.Id)
	assert.False(t, goal.Achieved)

	require.NoError(t, goalService.MarkAchieved("owner-a", goal.Id))

	goals, err := goalService.GetByUser("owner-a", true)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Achieved)

	// idempotent: same end state on repeat
	require.NoError(t, goalService.MarkAchieved("owner-a", goal.Id))
	goals, err = goalService.GetByUser("owner-a", true)
	require.NoError(t, err)
	assert.True(t, goals[0].Achieved)
}

func TestMarkAchievedWrongOwner(t *testing.T) {
	setupTestDB(t)

	goalService := GoalService{}

	goal, err := goalService.Create("owner-a", "run 5k")
	require.NoError(t, err)

	err = goalService.MarkAchieved("owner-b", goal.Id)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	err = goalService.MarkAchieved("owner-a", "no-such-goal")
	assert.ErrorIs(t, err, ErrGoalNotFound)

	goals, err := goalService.GetByUser("owner-a", true)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.False(t, goals[0].Achieved)
}

func TestReportBuild(t *testing.T) {
	setupTestDB(t)

	goalService := GoalService{}
	reportService := ReportService{}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	insertWorkout(t, "owner-a", "swim", 45, "medium", base.AddDate(0, 0, 2))
	insertWorkout(t, "owner-a", "run", 30, "high", base)
	insertWorkout(t, "owner-b", "bike", 60, "low", base)

	_, err := goalService.Create("owner-a", "run 5k")
	require.NoError(t, err)

	report, err := reportService.Build("owner-a")
	require.NoError(t, err)

	// parallel series are index-aligned, one element per workout, ascending
	require.Len(t, report.Workouts, 2)
	require.Len(t, report.Dates, 2)
	require.Len(t, report.Durations, 2)
	require.Len(t, report.Intensities, 2)

	assert.Equal(t, []string{"2024-03-01", "2024-03-03"}, report.Dates)
	assert.Equal(t, []float64{30, 45}, report.Durations)
	assert.Equal(t, []string{"high", "medium"}, report.Intensities)
	require.Len(t, report.Goals, 1)
	assert.Equal(t, "run 5k", report.Goals[0].Description)
}

func TestReportBuildEmpty(t *testing.T) {
	setupTestDB(t)

	reportService := ReportService{}

	report, err := reportService.Build("owner-a")
	require.NoError(t, err)
	assert.Empty(t, report.Workouts)
	assert.Empty(t, report.Dates)
	assert.Empty(t, report.Durations)
	assert.Empty(t, report.Intensities)
	assert.Empty(t, report.Goals)
}
