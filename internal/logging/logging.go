// Package logging holds the command-line logger.
package logging

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the logger shared by the commands.
var Log = logrus.New()

// SetLevel sets the level of Log from its name: debug, info, warn, error or
// fatal.
func SetLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info", "":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("logging: bad level %q", level)
	}
	return nil
}
