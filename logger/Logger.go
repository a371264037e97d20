package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	console bool
}

func readLoggerProperties(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("console", false)

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read logger properties: %w", err)
	}
	return v, nil
}

// Init reads logger.properties from dir; a missing file falls back to defaults.
func (l *Logger) Init(dir string) error {
	v, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}

	logFilename := cast.ToString(v.Get("logFilename"))
	if !filepath.IsAbs(logFilename) {
		logFilename = filepath.Join(dir, logFilename)
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    cast.ToInt(v.Get("maxSize")),
		MaxBackups: cast.ToInt(v.Get("maxBackups")),
		MaxAge:     cast.ToInt(v.Get("maxAge")),
		Compress:   cast.ToBool(v.Get("compress")),
	}

	l.SetOutput(loggerConfig)
	l.console = cast.ToBool(v.Get("console"))
	logrus.SetLevel(parseLevel(cast.ToString(v.Get("level"))))
	return nil
}

// SetOutput points the JSON log stream at w.
func (l *Logger) SetOutput(w io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(w)
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo(logrus.InfoLevel, "Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo(logrus.ErrorLevel, "Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo(logrus.DebugLevel, "Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo(logrus.WarnLevel, "Warn:", message)
}

// Fatal always reaches stderr, then exits.
func (l *Logger) Fatal(message string) {
	fmt.Fprintln(os.Stderr, "Fatal:", message)
	logrus.Fatal(message)
}

// echo mirrors to stdout; off by default since the terminal frontend owns the screen.
func (l *Logger) echo(level logrus.Level, prefix, message string) {
	if l.console && logrus.IsLevelEnabled(level) {
		fmt.Println(prefix, message)
	}
}
