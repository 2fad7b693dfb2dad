package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// UnitReporter is implemented by loggers with a dedicated line format for
// finished build units.
type UnitReporter interface {
	// Unit reports that the unit for path finished for target. Cached units
	// wrote nothing new.
	Unit(target, path string, cached bool)
}
