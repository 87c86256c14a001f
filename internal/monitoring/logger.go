// Package monitoring carries the module's diagnostic logging: a single
// replaceable Logf hook so long frame collections can report progress
// without forcing a logging dependency on embedding programs.
package monitoring

import "log"

// logPrefix tags default-logger lines so they are attributable when the
// embedding program shares the standard logger.
const logPrefix = "spread.report: "

// Logf is the package-level diagnostic logger. The default writes
// through log.Printf with a package prefix; tests and embedding
// programs redirect or mute it with SetLogger.
var Logf func(format string, v ...interface{}) = defaultLogf

func defaultLogf(format string, v ...interface{}) {
	log.Printf(logPrefix+format, v...)
}

// SetLogger replaces the package logger. A nil argument installs a
// no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
