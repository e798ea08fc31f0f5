package service

import (
	"errors"
	"time"

	"fittrack/database"
	"fittrack/database/model"
)

// ErrGoalNotFound means no goal matched both the id and the owner.
var ErrGoalNotFound = errors.New("goal not found")

type GoalService struct{}

// Create inserts a pending goal for the owner.
func (s *GoalService) Create(userId string, description string) (*model.Goal, error) {
	db := database.GetDB()

	goal := &model.Goal{
		UserId:      userId,
		Description: description,
		Achieved:    false,
		CreatedAt:   time.Now(),
	}
	if err := db.Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// MarkAchieved flips the goal to achieved. The update is scoped to the owner,
// so a non-owner's id matches nothing and reports ErrGoalNotFound. The
// transition is irreversible; repeating it is a no-op with the same end state.
func (s *GoalService) MarkAchieved(userId string, goalId string) error {
	db := database.GetDB()

	result := db.Model(model.Goal{}).
		Where("id = ? AND user_id = ?", goalId, userId).
		Update("achieved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// GetByUser returns the owner's goals ordered by creation date.
func (s *GoalService) GetByUser(userId string, ascending bool) ([]model.Goal, error) {
	db := database.GetDB()

	order := "created_at desc"
	if ascending {
		order = "created_at asc"
	}

	goals := make([]model.Goal, 0)
	err := db.Where("user_id = ?", userId).
		Order(order).
		Find(&goals).
		Error
	return goals, err
}
