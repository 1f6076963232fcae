package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	dotenv  sync.Once
	entries sync.Map // reflect.Type -> *entry
)

// Load populates v from the environment. See the package doc for caching.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenv.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	e, _ := entries.LoadOrStore(key, &entry{})
	ent := e.(*entry)

	ent.once.Do(func() {
		parsed, err := env.ParseAs[T]()
		if err != nil {
			ent.err = errors.Join(ErrParse, err)
			return
		}
		ent.value = parsed
	})

	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
