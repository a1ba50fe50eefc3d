package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogrus() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	logrus.SetLevel(logrus.InfoLevel)
	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
}

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("WARN"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(" trace "))
	assert.Equal(t, DefaultLevel, GetLevel(""))
	assert.Equal(t, DefaultLevel, GetLevel("verbose"))
}

func TestSetup_WritesToRotatedFile(t *testing.T) {
	defer resetLogrus()

	base := filepath.Join(t.TempDir(), "tracker")
	closer := Setup(LoggerSetupParams{
		LogFileName:   base,
		LogLevel:      "debug",
		LogFormatJSON: true,
		ServiceName:   "plan-tracker",
		Environment:   "test",
		MaxBackups:    3,
	})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.Debug("enrollment advanced")
	logrus.WithField("env", "override").Info("explicit field wins")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"enrollment advanced"`)
	assert.Contains(t, string(content), `"service":"plan-tracker"`)
	assert.Contains(t, string(content), `"env":"test"`)
	assert.Contains(t, string(content), `"env":"override"`)
}

func TestSetup_StdoutOnly(t *testing.T) {
	defer resetLogrus()

	closer := Setup(LoggerSetupParams{LogLevel: "nonsense"})
	assert.Equal(t, DefaultLevel, logrus.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestServiceFieldsHook(t *testing.T) {
	assert.Nil(t, newServiceFieldsHook("", ""))

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(newServiceFieldsHook("plan-tracker", ""))

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"service":"plan-tracker"`)
	assert.NotContains(t, buf.String(), `"env"`)
}
