package controller

import (
	"net"
	"net/http"
	"strings"

	"fittrack/config"
	"fittrack/logger"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote
// address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders a template with the provided data and title.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["cur_ver"] = config.GetVersion()
	c.HTML(http.StatusOK, name, data)
}

// serverError logs a storage-layer failure and answers with a generic 500.
func serverError(c *gin.Context, msg string, err error) {
	logger.Error(msg+":", err)
	c.String(http.StatusInternalServerError, "Server error")
}
