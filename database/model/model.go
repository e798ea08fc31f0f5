// Package model defines the persisted records of fittrack: users and the
// workouts and goals they own.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	Id       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
}

// Workout is a single logged exercise session. Records are immutable once
// inserted.
type Workout struct {
	Id        string    `json:"id" gorm:"primaryKey"`
	UserId    string    `json:"-" gorm:"index"`
	Type      string    `json:"type" form:"workoutType"`
	Duration  float64   `json:"duration" form:"duration"`
	Intensity string    `json:"intensity" form:"intensity"`
	Distance  float64   `json:"distance" form:"distance"`
	LoggedAt  time.Time `json:"loggedAt"`
}

// Goal is a user-defined target. Achieved only ever flips false to true.
type Goal struct {
	Id          string    `json:"id" gorm:"primaryKey"`
	UserId      string    `json:"-" gorm:"index"`
	Description string    `json:"description" form:"goalDescription"`
	Achieved    bool      `json:"achieved" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.Id == "" {
		w.Id = uuid.NewString()
	}
	return nil
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.Id == "" {
		g.Id = uuid.NewString()
	}
	return nil
}
