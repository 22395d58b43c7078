// Package logger builds configured log/slog loggers for the CLI front-ends
// of the validation library.
//
// The validation core itself never logs; logging lives at the caller
// boundary, where a logger produced here reports outcomes and host-level
// errors.
//
// New applies functional options over sensible CLI defaults (text format,
// info level, stderr) and wraps the handler with a decorator that pulls
// attributes out of the context at logging time:
//
//	log := logger.New(
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithFormat(logger.Format(cfg.LogFormat)),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
// Attribute helpers (Error, Component, Predicate, Kind) keep log keys
// consistent across call sites.
package logger
