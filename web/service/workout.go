package service

import (
	"time"

	"fittrack/database"
	"fittrack/database/model"
)

type WorkoutService struct{}

// Add inserts a workout for the owner, stamping LoggedAt with the current
// server time. Workouts are immutable after this point.
func (s *WorkoutService) Add(userId string, workoutType string, duration float64, intensity string, distance float64) (*model.Workout, error) {
	db := database.GetDB()

	workout := &model.Workout{
		UserId:    userId,
		Type:      workoutType,
		Duration:  duration,
		Intensity: intensity,
		Distance:  distance,
		LoggedAt:  time.Now(),
	}
	if err := db.Create(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

// GetByUser returns the owner's workouts ordered by log date.
func (s *WorkoutService) GetByUser(userId string, ascending bool) ([]model.Workout, error) {
	db := database.GetDB()

	order := "logged_at desc"
	if ascending {
		order = "logged_at asc"
	}

	workouts := make([]model.Workout, 0)
	err := db.Where("user_id = ?", userId).
		Order(order).
		Find(&workouts).
		Error
	return workouts, err
}
