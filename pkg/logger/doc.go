// Package logger provides a small factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// New creates a *slog.Logger configured by a set of Option functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//
// Helper constructors such as Error and Component return commonly-used
// slog.Attr instances to keep attribute naming consistent across the
// codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/vendkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithService("vendingd"),
//	        logger.WithFormat(logger.FormatText),
//	        logger.WithLevel(slog.LevelDebug),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("machine ready", logger.Component("vending"))
//	}
package logger
