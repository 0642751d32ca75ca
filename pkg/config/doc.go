// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment,
//     later files overriding earlier ones.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so each type is parsed once.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache and ForceReload drop cached values, mostly for tests.
//
// # Usage
//
//	type Config struct {
//		Delimiter   string `env:"HAIKUNATOR_DELIMITER" envDefault:"-"`
//		TokenLength int    `env:"HAIKUNATOR_TOKEN_LENGTH" envDefault:"4"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//		log.Fatal(err)
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The default `.env` in the working directory is loaded once, before the
// first Load, when it exists.
//
// # Errors
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrNilPointer: a nil pointer was passed to Load or ForceReload.
//   - ErrLoadEnvFile: a `.env` file could not be read.
//
// Parse failures are not cached; a later Load retries.
package config
