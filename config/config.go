package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("FITTRACK_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("FITTRACK_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("FITTRACK_LISTEN")
}

func GetPort() int {
	portStr := os.Getenv("FITTRACK_PORT")
	if portStr == "" {
		return 3000
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 3000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("FITTRACK_DB_FOLDER")
	if dbFolderPath == "" {
		if IsDebug() {
			return "db"
		}
		dbFolderPath = "/etc/fittrack"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("FITTRACK_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetSessionSecret returns the key used to authenticate session cookies.
// Empty means a fresh key is generated at startup, which invalidates
// sessions across restarts.
func GetSessionSecret() string {
	return os.Getenv("FITTRACK_SESSION_SECRET")
}
