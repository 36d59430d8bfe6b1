package logger

import (
	"log/slog"
	"os"
)

var std *slog.Logger = slog.Default()

// Init configures the global logger. Production gets JSON output, anything
// else gets human-readable text.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	std = slog.New(handler)
	slog.SetDefault(std)
}

func Info(msg string, args ...any) {
	std.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	std.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	std.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	std.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize accepts both slog-style key/value pairs and bare error values,
// so callers can write Error("failed", err) or Info("started", "port", p).
func normalize(args []any) []any {
	out := make([]any, 0, len(args))
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err)
			continue
		}
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i++
			continue
		}
		out = append(out, "detail", args[i])
	}
	return out
}
