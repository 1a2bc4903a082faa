package logutils

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the level chosen from the gin mode.
const LevelEnv = "AGENCYOS_LOG_LEVEL"

// Log is the logger used by the package.
var Log = logrus.New()

// Fields is the type of logrus.Fields.
type Fields = logrus.Fields

// SetLevel applies a logrus level name such as "debug" or "warn".
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(level)
	return nil
}

//nolint:gochecknoinits // This is the only place where we should set the log level.
func init() {
	Log.SetLevel(logrus.InfoLevel)
	if gin.Mode() == gin.DebugMode {
		Log.SetLevel(logrus.DebugLevel)
	}
	if name, ok := os.LookupEnv(LevelEnv); ok {
		if err := SetLevel(name); err != nil {
			Log.Warnf("ignoring %s: %v", LevelEnv, err)
		}
	}
	Log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     true,
		FullTimestamp:   true,

		EnvironmentOverrideColors: true,
	})
	Log.SetReportCaller(true)
}
