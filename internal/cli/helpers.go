package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/mesh-intelligence/activitylog/internal/logging"
	"github.com/mesh-intelligence/activitylog/internal/sqlite"
	"github.com/mesh-intelligence/activitylog/pkg/types"
)

// session is everything a command needs after startup: the loaded config,
// the logger, and the open repository.
type session struct {
	cfg       types.Config
	configDir string
	log       *logrus.Entry
	repo      *sqlite.Activities
	logCloser io.Closer
}

// openSession loads config, sets up logging, and opens the repository. The
// caller must call close exactly once.
func openSession(cmd *cobra.Command, flags *rootFlags, mode configMode) (*session, error) {
	cfg, configDir, err := loadConfig(flags, mode)
	if err != nil {
		return nil, userError("%w", err)
	}

	log, logCloser, err := logging.Setup(logging.Params{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		JSON:   cfg.LogJSON,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, sysError("set up logging: %w", err)
	}
	log = log.WithField("cmd", cmd.Name())

	repo, err := sqlite.OpenActivities(cfg.DBPath, log)
	if err != nil {
		log.WithError(err).Error("open database failed")
		return nil, multierr.Append(
			sysError("Error al conectar a la base de datos: %w", err),
			logCloser.Close(),
		)
	}

	return &session{
		cfg:       cfg,
		configDir: configDir,
		log:       log,
		repo:      repo,
		logCloser: logCloser,
	}, nil
}

// close releases the repository and the log file.
func (s *session) close() error {
	return multierr.Combine(s.repo.Close(), s.logCloser.Close())
}

// withSession runs fn with an open session and closes it afterwards. A close
// failure is reported only when fn succeeded.
func withSession(cmd *cobra.Command, flags *rootFlags, mode configMode, fn func(s *session) error) (err error) {
	s, err := openSession(cmd, flags, mode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil && err == nil {
			err = sysError("close: %w", cerr)
		}
	}()
	return fn(s)
}

// parseID parses a record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, userError("invalid id %q: must be an integer", arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError("marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}
