package ports

// Logger is the process-wide diagnostic log. Messages land on the user's
// terminal, separate from command output; Error takes the error itself so
// the adapter can render it structurally.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
