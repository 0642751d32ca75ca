// Package logger builds *slog.Logger instances from functional options.
//
// New applies the options on top of the defaults (text output, INFO level,
// os.Stderr) and returns a logger backed by slog.NewTextHandler or
// slog.NewJSONHandler. ParseLevel and ParseFormat turn user-supplied strings,
// such as command line flags, into option values.
//
// # Usage
//
//	import "github.com/dmitrymomot/haikunator/pkg/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithAttr(logger.Component("haikunate")),
//	)
//	log.Debug("generated names", logger.Count(3))
//
// Attribute helpers in attr.go keep key names consistent.
package logger
