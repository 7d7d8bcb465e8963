// Package log provides the logging abstraction used by budgetplanner
// components that run beyond a single computation, such as the config
// watcher.
//
// The planner core does not log. Components that do accept a [Logger] and
// default to [NoopLogger], so library users opt in:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Implement [Logger] to route messages to another logging library.
package log
