// Package log writes diagnostics to a dated file under where.Logs(). Nothing is
// written unless logs.write is enabled.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type (
	Fields = logrus.Fields
	Entry  = logrus.Entry
)

var (
	standard = logrus.StandardLogger()
	discard  = &logrus.Logger{
		Out:       io.Discard,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.PanicLevel,
	}

	active = discard
)

// Setup opens today's log file and applies logs.level and logs.json.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		active = discard
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	standard.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		standard.SetFormatter(&logrus.JSONFormatter{})
	} else {
		standard.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	standard.SetLevel(level)

	active = standard
	return nil
}

// WithFields returns an entry carrying fields.
func WithFields(fields Fields) *Entry {
	return active.WithFields(fields)
}

func Error(args ...any)                 { active.Error(args...) }
func Errorf(format string, args ...any) { active.Errorf(format, args...) }
func Warn(args ...any)                  { active.Warn(args...) }
func Warnf(format string, args ...any)  { active.Warnf(format, args...) }
func Info(args ...any)                  { active.Info(args...) }
func Infof(format string, args ...any)  { active.Infof(format, args...) }
func Debug(args ...any)                 { active.Debug(args...) }
func Debugf(format string, args ...any) { active.Debugf(format, args...) }
