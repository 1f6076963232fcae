// Command cookiecount is a small server showing the cookie codec at work:
// hit counters kept in plain, signed and JSON cookies.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/signedcookie/pkg/cookie"
	"github.com/dmitrymomot/signedcookie/pkg/httpserver"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("cookiecount stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg.Env)

	codec, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}
	codec = codec.WithDecoderOptions(cookie.WithLogger(log))

	if !codec.Signed() {
		log.Warn("COOKIE_SECRETS is empty, cookies are not signed")
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(codec, log))
}

// newLogger uses text output in development and JSON everywhere else.
func newLogger(env string) *slog.Logger {
	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler).With(slog.String("service", "cookiecount"), slog.String("env", env))
}
