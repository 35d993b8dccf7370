package logger

import (
	"os"
	"wallpost/pkg/config"

	zl "github.com/rs/zerolog"
)

// log is an unexported package-level global variable that holds the logger instance
var log *logger

type logger struct {
	engine *zl.Logger
}

type options struct {
	format string
}

// InitLogger initializes the logger with configuration
func InitLogger(cfg *config.Config) {
	logLvl := getLogLevel(cfg.Log.Level)

	opts := options{
		format: cfg.Log.Format,
	}

	zl.SetGlobalLevel(logLvl)
	setupCloudLoggingSeverity()
	engine := newLogger(opts)

	log = &logger{
		engine: &engine,
	}
}

// getLogLevel returns the log level based on the string input
func getLogLevel(level string) zl.Level {
	switch level {
	case DebugLevel:
		return zl.DebugLevel
	case InfoLevel:
		return zl.InfoLevel
	case WarnLevel:
		return zl.WarnLevel
	case ErrorLevel:
		return zl.ErrorLevel
	default:
		return zl.InfoLevel
	}
}

// setupCloudLoggingSeverity configures zerolog to use Cloud Logging severity levels
func setupCloudLoggingSeverity() {
	zl.LevelFieldMarshalFunc = func(l zl.Level) string {
		switch l {
		case zl.DebugLevel:
			return "DEBUG"
		case zl.InfoLevel:
			return "INFO"
		case zl.WarnLevel:
			return "WARNING"
		case zl.ErrorLevel:
			return "ERROR"
		case zl.FatalLevel:
			return "CRITICAL"
		case zl.PanicLevel:
			return "CRITICAL"
		default:
			return "DEFAULT"
		}
	}
}

// newLogger creates a logger that outputs JSON format (better for cloud environments)
// unless console format is requested explicitly.
func newLogger(opts options) zl.Logger {
	// for structured cloud logging we need specific field names
	zl.TimeFieldFormat = zl.TimeFormatUnix
	zl.TimestampFieldName = "timestamp"
	zl.LevelFieldName = "severity"
	zl.MessageFieldName = "message"

	if opts.format == ConsoleFormat {
		return zl.New(zl.ConsoleWriter{Out: os.Stdout}).With().
			Timestamp().
			Caller().
			Logger()
	}

	return zl.New(os.Stdout).With().
		Timestamp().
		Caller().
		Logger()
}
