// Package progress defines the progress signal emitted by prime enumeration
// runs. The signal is purely observational: producers never depend on when,
// or whether, a consumer reads it.
package progress
