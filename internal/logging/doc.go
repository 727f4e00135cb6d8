// Package logging provides structured logging for the todo front-end.
//
// It wraps log/slog with a JSON handler. Because the terminal UI owns the
// screen, logs are written to a file in the state directory
// ($XDG_STATE_HOME/todo/todo.log) through a size-based [RotatingWriter].
// CLI subcommands write to the same file.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	apiLog := logger.WithComponent("api")
//	apiLog.Debug("request completed", "method", "GET", "path", "/api/v1/task", "status", 200)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"request completed","component":"api","method":"GET","path":"/api/v1/task","status":200}
//
// # Reading Logs
//
// [ReadLogs], [FilterLogs], [Tail] and [WriteEntries] back the "todo logs"
// command.
//
// # Thread Safety
//
// [Logger] and [RotatingWriter] are safe for concurrent use. Child loggers
// share the parent's writer.
package logging
