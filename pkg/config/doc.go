// Package config fills configuration structs from environment variables.
//
// The first call to Load reads an optional .env file from the working
// directory through github.com/joho/godotenv. Struct fields are then
// populated with github.com/caarlos0/env/v11 using `env` and `envDefault`
// tags. Nested structs are walked, which lets a binary embed the configs of
// the packages it wires:
//
//	type appConfig struct {
//		Env    string `env:"APP_ENV" envDefault:"development"`
//		HTTP   httpserver.Config
//		Cookie cookie.Config
//	}
//
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Every type is parsed at most once per process. Later calls copy the
// cached value, and a failed parse keeps returning the same error.
package config
