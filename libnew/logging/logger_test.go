package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initLogger = GetLogger("init")

func TestGetLoggerSetsSubsystem(t *testing.T) {
	hook := test.NewLocal(root)
	defer hook.Reset()

	GetLogger("harness").Info("test")

	assert.Equal(t, "harness", hook.LastEntry().Data["subsystem"])
}

func TestEntriesFromInitSeeLaterHooks(t *testing.T) {
	hook := new(test.Hook)
	AddHook(hook)

	initLogger.Warn("late")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "init", hook.LastEntry().Data["subsystem"])
	assert.Equal(t, "late", hook.LastEntry().Message)
}

func TestHookStampsAppName(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.AddHook(&GlobalHook{})
	logger.WithField("path", "/x").Info("test")

	assert.Equal(t, "numbench", hook.LastEntry().Data["app"])
}

func TestHookCountsOnlyErrors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	errors := 0
	logger.AddHook(&GlobalHook{OnError: func() { errors++ }})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.WithField("strategy", "regex").Error("error")

	assert.Equal(t, 2, errors)
}
