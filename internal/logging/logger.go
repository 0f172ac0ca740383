// Package logging configures the logrus logger used by the command layer and
// the repository.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params selects the log level, format, and destination.
type Params struct {
	Level string
	// File enables a rotating log file instead of Output.
	File string
	JSON bool
	// Output is used when File is empty. Defaults to stderr.
	Output io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a logger from params and returns it tagged with a per-run
// session id. The returned Closer releases the log file, if any, and must be
// closed at shutdown.
func Setup(params Params) (*logrus.Entry, io.Closer, error) {
	logger := logrus.New()
	logger.SetLevel(GetLevel(params.Level))
	if params.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	var closer io.Closer = nopCloser{}
	switch {
	case params.File != "":
		if !strings.HasSuffix(params.File, ".log") {
			params.File += ".log"
		}
		if err := os.MkdirAll(filepath.Dir(params.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   params.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			Compress:   true,
		}
		logger.SetOutput(lj)
		closer = lj
	case params.Output != nil:
		logger.SetOutput(params.Output)
	default:
		logger.SetOutput(os.Stderr)
	}

	return logger.WithField("session", newSessionID()), closer, nil
}

// GetLevel maps a level name to a logrus level. Empty or unknown names map to
// warn, which keeps the interactive menu quiet unless something fails.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
