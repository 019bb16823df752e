package logging

import (
	"github.com/germanoeich/nirn-numbench/libnew/util"
	"github.com/sirupsen/logrus"
)

// GlobalHook stamps every entry with the app name and reports error-level entries to OnError.
type GlobalHook struct {
	OnError func()
}

func (h *GlobalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *GlobalHook) Fire(e *logrus.Entry) error {
	e.Data["app"] = "numbench"
	if logrus.ErrorLevel >= e.Level && h.OnError != nil {
		h.OnError()
	}
	return nil
}

var root = newRoot()

func newRoot() *logrus.Logger {
	logger := logrus.New()

	logLevel := util.EnvGet("LOG_LEVEL", "info")
	lvl, err := logrus.ParseLevel(logLevel)

	if err != nil {
		panic("Failed to parse log level")
	}

	logger.SetLevel(lvl)
	return logger
}

// GetLogger returns an entry on the shared logger. Entries created at package init
// still see later SetLevel and AddHook calls.
func GetLogger(subsystem string) *logrus.Entry {
	return root.WithField("subsystem", subsystem)
}

// SetLevel overrides the level picked up from LOG_LEVEL at init.
func SetLevel(lvl logrus.Level) {
	root.SetLevel(lvl)
}

func AddHook(hook logrus.Hook) {
	root.AddHook(hook)
}
