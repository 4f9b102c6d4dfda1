// Package logger provides adapters for popular logger libraries to work with ordset's Logger interface.
//
// The adapters allow you to use your existing logger with ordset without writing boilerplate.
// Note that the standard library's slog.Logger already implements ordset.Logger directly.
//
// Example with zap:
//
//	import (
//	    "ordset"
//	    "ordset/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree, err := ordset.New[string](16, ordset.WithLogger(logger.NewZap(zapLogger)))
//	    if err != nil {
//	        panic(err)
//	    }
//	    tree.Insert("hello")
//	}
//
package logger
