package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultLevel keeps per-request Debug lines (cursor moves, override
	// batches, log writes) out of production output.
	DefaultLevel = logrus.InfoLevel

	defaultMaxSizeMB = 50
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool

	// Stamped on every entry so lines from several instances can be told apart.
	ServiceName string
	Environment string

	// Rotation; zero MaxBackups and MaxAgeDays keep every rotated file.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup configures the package-level logrus logger. The returned closer
// releases the log file, if one was opened.
func Setup(params LoggerSetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, known := parseLevel(params.LogLevel)
	logrus.SetLevel(level)
	if !known {
		logrus.Warnf("unknown log level %q, using %s", params.LogLevel, level)
	}

	if hook := newServiceFieldsHook(params.ServiceName, params.Environment); hook != nil {
		logrus.AddHook(hook)
	}

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}
	maxSize := params.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}

	rotated := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    maxSize, // megabytes
		MaxBackups: params.MaxBackups,
		MaxAge:     params.MaxAgeDays,
		LocalTime:  false, // rotated file names in UTC, like the enrollment dates
		Compress:   true,
	}

	if params.LogToStdout {
		logrus.SetOutput(io.MultiWriter(os.Stdout, rotated))
		logrus.Printf("writing logs to %s and STDOUT", params.LogFileName)
	} else {
		logrus.SetOutput(rotated)
	}
	return rotated
}

// GetLevel parses a level name, falling back to DefaultLevel.
func GetLevel(level string) logrus.Level {
	l, _ := parseLevel(level)
	return l
}

func parseLevel(level string) (logrus.Level, bool) {
	if strings.TrimSpace(level) == "" {
		return DefaultLevel, true
	}
	l, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return DefaultLevel, false
	}
	return l, true
}

// serviceFieldsHook adds fixed service fields to entries that do not set them.
type serviceFieldsHook struct {
	fields logrus.Fields
}

func newServiceFieldsHook(service, env string) *serviceFieldsHook {
	fields := logrus.Fields{}
	if service != "" {
		fields["service"] = service
	}
	if env != "" {
		fields["env"] = env
	}
	if len(fields) == 0 {
		return nil
	}
	return &serviceFieldsHook{fields: fields}
}

func (h *serviceFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceFieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, set := entry.Data[k]; !set {
			entry.Data[k] = v
		}
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
