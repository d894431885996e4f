// Package orchestration runs the parallel and sequential prime enumerations
// one after the other and compares their results. It decouples the run logic
// from presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
