// Package session binds the logged-in user identity to the gin session.
package session

import (
	"fittrack/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserId = "LOGIN_USER_ID"

// SetLoginUser stores the user's identity in the session, starting one if
// needed.
func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUserId, user.Id)
	return s.Save()
}

// GetLoginUserId resolves the caller's session to a user id, or "" when no
// valid session exists.
func GetLoginUserId(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginUserId); obj != nil {
		if id, ok := obj.(string); ok {
			return id
		}
	}
	return ""
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUserId(c) != ""
}

// ClearSession invalidates the caller's session and expires its cookie.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
