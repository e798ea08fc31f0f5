package controller

import (
	"errors"
	"net/http"

	"fittrack/logger"
	"fittrack/web/service"
	"fittrack/web/session"

	"github.com/gin-gonic/gin"
)

// CredentialsForm carries the register and login request fields.
type CredentialsForm struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// IndexController handles the public routes: index, registration, login and
// logout.
type IndexController struct {
	BaseController

	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.checkLogin, a.logout)
}

// index shows the landing page, sending live sessions straight to the
// dashboard.
func (a *IndexController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
		return
	}
	html(c, "index.html", "Workout Tracker", nil)
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates the account and logs the new user in.
func (a *IndexController) register(c *gin.Context) {
	var form CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := a.userService.Register(form.Username, form.Password)
	if errors.Is(err, service.ErrDuplicateUsername) {
		c.String(http.StatusBadRequest, "Username already exists")
		return
	}
	if err != nil {
		serverError(c, "register user", err)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		serverError(c, "save session", err)
		return
	}
	logger.Infof("%s registered, IP: %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (a *IndexController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", nil)
}

// login authenticates the credentials and starts a session.
func (a *IndexController) login(c *gin.Context) {
	var form CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusOK, "Invalid username or password.")
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		logger.Warningf("failed login for %q, IP: %s", form.Username, getRemoteIp(c))
		c.String(http.StatusOK, "Invalid username or password.")
		return
	}
	if err != nil {
		serverError(c, "check user", err)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		serverError(c, "save session", err)
		return
	}
	logger.Infof("%s logged in, IP: %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// logout destroys the session. A store failure clearing it surfaces as a
// server error.
func (a *IndexController) logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		serverError(c, "clear session", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
