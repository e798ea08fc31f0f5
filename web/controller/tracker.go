package controller

import (
	"errors"
	"net/http"

	"fittrack/database/model"
	"fittrack/logger"
	"fittrack/web/service"
	"fittrack/web/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// WorkoutForm carries the log-workout request fields. Duration and distance
// must be non-negative numbers; binding rejects anything else at the boundary.
type WorkoutForm struct {
	WorkoutType string  `json:"workoutType" form:"workoutType" binding:"required"`
	Duration    float64 `json:"duration" form:"duration" binding:"min=0"`
	Intensity   string  `json:"intensity" form:"intensity"`
	Distance    float64 `json:"distance" form:"distance" binding:"omitempty,min=0"`
}

// GoalForm carries the set-goal request fields.
type GoalForm struct {
	GoalDescription string `json:"goalDescription" form:"goalDescription" binding:"required"`
}

// AchievedForm carries the goal id to mark achieved.
type AchievedForm struct {
	GoalId string `json:"goalId" form:"goalId" binding:"required"`
}

// TrackerController handles the session-protected routes: dashboard, workout
// logging, goal tracking and the progress report.
type TrackerController struct {
	BaseController

	userService    service.UserService
	workoutService service.WorkoutService
	goalService    service.GoalService
	reportService  service.ReportService
}

func NewTrackerController(g *gin.RouterGroup) *TrackerController {
	a := &TrackerController{}
	a.initRouter(g)
	return a
}

func (a *TrackerController) initRouter(g *gin.RouterGroup) {
	g.Use(a.checkLogin)

	g.GET("/dashboard", a.dashboard)
	g.GET("/logworkout", a.logWorkoutPage)
	g.POST("/logworkout", a.logWorkout)
	g.GET("/setgoal", a.setGoalPage)
	g.POST("/setgoal", a.setGoal)
	g.POST("/goals/achieved", a.markAchieved)
	g.GET("/progressreport", a.progressReport)
}

// dashboard renders the user's overview. The three reads are independent, so
// they run concurrently and are joined before rendering.
func (a *TrackerController) dashboard(c *gin.Context) {
	userId := session.GetLoginUserId(c)

	var (
		user     *model.User
		workouts []model.Workout
		goals    []model.Goal
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		user, err = a.userService.GetUser(userId)
		return err
	})
	g.Go(func() (err error) {
		workouts, err = a.workoutService.GetByUser(userId, false)
		return err
	})
	g.Go(func() (err error) {
		goals, err = a.goalService.GetByUser(userId, false)
		return err
	})
	if err := g.Wait(); err != nil {
		serverError(c, "load dashboard", err)
		return
	}

	html(c, "dashboard.html", "Dashboard", gin.H{
		"user":     user,
		"workouts": workouts,
		"goals":    goals,
	})
}

func (a *TrackerController) logWorkoutPage(c *gin.Context) {
	html(c, "logworkout.html", "Log Workout", nil)
}

// logWorkout inserts an immutable workout entry for the session's user.
func (a *TrackerController) logWorkout(c *gin.Context) {
	var form WorkoutForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid workout data")
		return
	}

	userId := session.GetLoginUserId(c)
	_, err := a.workoutService.Add(userId, form.WorkoutType, form.Duration, form.Intensity, form.Distance)
	if err != nil {
		serverError(c, "log workout", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (a *TrackerController) setGoalPage(c *gin.Context) {
	html(c, "setgoal.html", "Set Goal", nil)
}

// setGoal inserts a pending goal for the session's user.
func (a *TrackerController) setGoal(c *gin.Context) {
	var form GoalForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Goal description is required")
		return
	}

	userId := session.GetLoginUserId(c)
	if _, err := a.goalService.Create(userId, form.GoalDescription); err != nil {
		serverError(c, "set goal", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// markAchieved flips a goal owned by the session's user to achieved. An id
// that matches no owned goal is logged and the caller still lands on the
// dashboard.
func (a *TrackerController) markAchieved(c *gin.Context) {
	var form AchievedForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Goal id is required")
		return
	}

	userId := session.GetLoginUserId(c)
	err := a.goalService.MarkAchieved(userId, form.GoalId)
	if errors.Is(err, service.ErrGoalNotFound) {
		logger.Warningf("goal %s not found for user %s", form.GoalId, userId)
	} else if err != nil {
		serverError(c, "mark goal achieved", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// progressReport renders the derived chart projection of the user's workouts
// and goals.
func (a *TrackerController) progressReport(c *gin.Context) {
	userId := session.GetLoginUserId(c)

	report, err := a.reportService.Build(userId)
	if err != nil {
		serverError(c, "build progress report", err)
		return
	}

	html(c, "progressreport.html", "Progress Report", gin.H{
		"workouts":    report.Workouts,
		"goals":       report.Goals,
		"dates":       report.Dates,
		"durations":   report.Durations,
		"intensities": report.Intensities,
	})
}
