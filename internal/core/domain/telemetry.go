package domain

// LogLevel classifies a log line attached to a telemetry vertex. The
// numeric values match log/slog levels so adapters can pass them through
// unchanged.
type LogLevel int

// Vertex log levels, from chattiest to most severe.
const (
	LogLevelDebug LogLevel = -4
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 4
	LogLevelError LogLevel = 8
)

// String returns the level's display name. Unknown values read as INFO,
// the level of untagged vertex output.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
