package logger

// Unexported formatting helpers surfaced for white-box tests.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
