package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	store = &cache{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

func (c *cache) get(key reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// Load parses environment variables into v according to its `env` tags.
//
// The default .env file in the working directory is loaded once, before the
// first parse, if it exists. Each configuration type is parsed only once:
// later calls for the same type copy the cached value into v.
//
//	var cfg haikunator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	key := typeKey[T]()
	if cached, ok := store.get(key); ok {
		*v = cached.(T)
		return nil
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	// another goroutine may have parsed it while we waited for the lock
	if cached, ok := store.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	store.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value for T and parses the environment again.
// Handy in tests and after LoadEnv.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	store.mu.Lock()
	delete(store.values, typeKey[T]())
	store.mu.Unlock()

	return Load(v)
}

// ResetCache forgets every parsed configuration.
func ResetCache() {
	store.mu.Lock()
	store.values = make(map[reflect.Type]any)
	store.mu.Unlock()
}

// LoadEnv loads the given .env files into the process environment, later
// files overriding earlier ones. With no paths it loads ./.env.
//
// Values already present in the environment are overwritten, so that an
// explicitly requested file wins over whatever the shell exported.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Overload(p); err != nil {
			return errors.Join(ErrLoadEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
