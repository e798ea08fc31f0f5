// Package controller provides the HTTP request handlers for fittrack: account
// registration and login, workout logging, goal tracking and the progress
// report.
package controller

import (
	"net/http"

	"fittrack/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication gate shared by all protected
// routes.
type BaseController struct{}

// checkLogin aborts the request and redirects to the login page when no valid
// session exists. No protected handler touches a data store behind it.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/login")
		c.Abort()
	} else {
		c.Next()
	}
}
