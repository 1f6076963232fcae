package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/signedcookie/pkg/cookie"
	"github.com/dmitrymomot/signedcookie/pkg/httpserver"
)

const (
	countCookie   = "count"
	statsCookie   = "stats"
	visitorCookie = "visitor"

	// counters live for ten seconds
	counterMaxAge = 10
)

var errCodecRoundTrip = errors.New("cookiecount.codec_round_trip")

type stats struct {
	Hits int `json:"hits"`
}

func newRouter(codec *cookie.Codec, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(codec.Middleware)

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, codecCheck(codec)))

	h := &handlers{codec: codec, log: log}
	r.Get("/count", h.count)
	r.Delete("/count", h.resetCount)
	r.Get("/json", h.jsonCount)
	r.Get("/visitor", h.visitor)
	r.Get("/dump", h.dump)

	return r
}

type handlers struct {
	codec *cookie.Codec
	log   *slog.Logger
}

// count increments a scalar counter. The codec's attribute defaults apply,
// so DELETE /count addresses the same cookie.
func (h *handlers) count(w http.ResponseWriter, r *http.Request) {
	c := cookie.FromContext(r.Context())

	n := 0
	if v, ok := c.Get(countCookie); ok {
		n, _ = strconv.Atoi(v)
	}
	n++

	h.codec.SetCookie(w, countCookie, strconv.Itoa(n), cookie.Aged(counterMaxAge))
	fmt.Fprintf(w, "Hit Counter: %d\n", n)
}

func (h *handlers) resetCount(w http.ResponseWriter, r *http.Request) {
	h.codec.Delete(w, countCookie)
	w.WriteHeader(http.StatusNoContent)
}

// jsonCount keeps the counter inside a JSON cookie.
func (h *handlers) jsonCount(w http.ResponseWriter, r *http.Request) {
	c := cookie.FromContext(r.Context())

	var s stats
	if err := c.DecodeJSON(statsCookie, &s); err != nil {
		s = stats{}
	}
	s.Hits++

	if _, err := h.codec.SetJSONCookie(w, statsCookie, s, cookie.Aged(counterMaxAge)); err != nil {
		h.log.ErrorContext(r.Context(), "failed to set json cookie", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	fmt.Fprintf(w, "Hit Counter: %d\n", s.Hits)
}

// visitor assigns a persistent identifier once and echoes it back.
func (h *handlers) visitor(w http.ResponseWriter, r *http.Request) {
	c := cookie.FromContext(r.Context())

	id, ok := c.Get(visitorCookie)
	if !ok {
		id = uuid.NewString()
		h.codec.SetCookie(w, visitorCookie, id, cookie.Secured(), cookie.WithSameSite(http.SameSiteLaxMode))
		h.log.InfoContext(r.Context(), "new visitor",
			slog.String("visitor_id", id),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
	fmt.Fprintln(w, id)
}

// dump writes the decoded record as JSON.
func (h *handlers) dump(w http.ResponseWriter, r *http.Request) {
	c := cookie.FromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"signed": c.Signed(),
		"map":    c.Map,
		"json":   c.JSON,
	})
}

// codecCheck encodes a cookie with the configured defaults and signer and
// decodes it back.
func codecCheck(codec *cookie.Codec) httpserver.Check {
	return func(context.Context) error {
		const name, value = "ready", "ok"
		pair, _, _ := strings.Cut(codec.Format(name, value), ";")
		if got, ok := codec.Decode(pair).Get(name); !ok || got != value {
			return errCodecRoundTrip
		}
		return nil
	}
}
