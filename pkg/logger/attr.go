package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the originating component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Predicate records the name of a validation predicate under the key "predicate".
func Predicate(name string) slog.Attr {
	return slog.String("predicate", name)
}

// Kind records a validation failure kind under the key "kind".
// If kind is empty, it returns an empty Attr.
func Kind(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("kind", kind)
}
