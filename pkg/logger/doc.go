// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the Format,
// applies static attributes and wraps the handler with LogHandlerDecorator,
// which runs the registered ContextExtractor callbacks at Handle time.
//
// # Usage
//
//	import "github.com/dmitrymomot/refcode/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(api.RequestIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "references generated",
//	    logger.Kind(reference.Secure),
//	    logger.Count(10),
//	)
//
// Attribute helpers such as Error and RequestID return an empty Attr for
// empty input, so they can be passed without a nil check.
package logger
