// Package logging is the diagnostic log of primecalc. Pool workers, the
// runners and the app log through the Logger interface; the command wires a
// zerolog console writer on stderr so stdout carries only result lines.
package logging
