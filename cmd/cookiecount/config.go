package main

import (
	"github.com/dmitrymomot/signedcookie/pkg/config"
	"github.com/dmitrymomot/signedcookie/pkg/cookie"
	"github.com/dmitrymomot/signedcookie/pkg/httpserver"
)

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	HTTP   httpserver.Config
	Cookie cookie.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}
