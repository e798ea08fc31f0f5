// Package service implements the business operations of fittrack on top of
// the database layer.
package service

import (
	"errors"

	"fittrack/database"
	"fittrack/database/model"
	"fittrack/logger"
	"fittrack/util/crypto"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct{}

// Register hashes the password and inserts a new user. The unique index on
// username turns concurrent duplicate registrations into a single atomic
// rejection.
func (s *UserService) Register(username string, password string) (*model.User, error) {
	db := database.GetDB()

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: hashedPassword,
	}
	err = db.Create(user).Error
	if database.IsDuplicate(err) {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies the credentials and returns the matching user.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *UserService) CheckUser(username string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(id string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.First(user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}
