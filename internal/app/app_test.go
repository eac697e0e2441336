package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/xenking/harshita-store/pkg/httpmiddleware"
)

type noopTelemetry struct{}

func (noopTelemetry) TracerProvider() trace.TracerProvider { return tracenoop.NewTracerProvider() }
func (noopTelemetry) MeterProvider() metric.MeterProvider  { return metricnoop.NewMeterProvider() }

func TestMiddlewares_RateLimitPerClient(t *testing.T) {
	cfg := &Config{
		RateLimit: RateLimitConfig{Max: 2, Window: time.Minute},
		CORS:      CORSConfig{Origins: []string{"*"}},
		Session:   SessionConfig{CookieName: "sid", CookieMaxAge: time.Hour},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/cart", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := httpmiddleware.Wrap(mux, middlewares(t.Context(), cfg, httpmiddleware.MakeRouteFinder(mux), noopTelemetry{})...)

	send := func(addr, session string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.RemoteAddr = addr
		if session != "" {
			req.Header.Set(httpmiddleware.DefaultSessionHeader, session)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	limited := 0
	for i := range 50 {
		session := ""
		if i%2 == 1 {
			session = uuid.NewString()
		}
		if send("10.0.0.1:4000", session) == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 48, limited)
	assert.Equal(t, http.StatusOK, send("10.0.0.2:4000", ""))
}
