// Package config loads refgen configuration from the environment.
//
// It wraps `github.com/joho/godotenv` for `.env` files and
// `github.com/caarlos0/env/v11` for parsing variables into tagged structs.
//
// # Usage
//
//	cfg, err := config.LoadConfig("./.env.local")
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
//	g := reference.New(cfg.Reference.GeneratorOptions()...)
//
// Load and MustLoad work on any struct with `env` tags, so other packages
// can describe their own settings (see httpserver.Config).
//
// # Variables
//
//	APP_NAME               service name attached to logs (refgen)
//	APP_ENV                development, staging or production (development)
//	LOG_LEVEL              debug, info, warn or error (info)
//	REFGEN_DEFAULT_KIND    kind used when none is given (alphanumeric)
//	REFGEN_DEFAULT_LENGTH  suffix length used when none is given (8)
//	REFGEN_DEFAULT_PREFIX  prefix used when none is given ("")
//	REFGEN_MAX_LENGTH      largest length accepted over HTTP (256)
//	REFGEN_MAX_COUNT       largest batch accepted over HTTP (100)
//	REFGEN_SEED            seed for reproducible output, 0 disables (0)
//	HTTP_*                 server settings, see httpserver.Config
//
// # Error Handling
//
// Failures wrap one of ErrLoadingEnvFile, ErrParsingConfig, ErrNilPointer or
// ErrInvalidConfig and can be matched with errors.Is.
package config
