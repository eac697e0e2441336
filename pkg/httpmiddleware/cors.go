package httpmiddleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig configures cross-origin access to the storefront API.
type CORSConfig struct {
	// Origins allowed to call the API. Empty or "*" allows any origin.
	Origins []string
	// Methods allowed in actual requests.
	Methods []string
	// Headers allowed in actual requests. Empty echoes the preflight request.
	Headers []string
	// Expose lists response headers readable by the browser.
	Expose []string
	// AllowCredentials lets browsers send the session cookie. A wildcard
	// origin is then replaced by the request origin.
	AllowCredentials bool
	// MaxAge of preflight results. Zero omits the header.
	MaxAge int
}

var (
	defaultCORSMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}
	defaultCORSExpose = []string{
		"X-Request-ID", "X-Session-ID", "X-RateLimit-Remaining", "Retry-After",
	}
)

type corsPolicy struct {
	any         bool
	echo        bool
	origins     map[string]string
	methods     string
	headers     string
	expose      string
	credentials bool
	maxAge      string
}

func newCORSPolicy(cfg CORSConfig) *corsPolicy {
	p := &corsPolicy{
		origins:     make(map[string]string, len(cfg.Origins)),
		credentials: cfg.AllowCredentials,
	}
	p.any = len(cfg.Origins) == 0
	for _, o := range cfg.Origins {
		if o == "*" {
			p.any = true
			continue
		}
		p.origins[strings.ToLower(o)] = o
	}
	if p.any && p.credentials {
		p.any, p.echo = false, true
	}

	methods := cfg.Methods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}
	expose := cfg.Expose
	if len(expose) == 0 {
		expose = defaultCORSExpose
	}
	p.methods = strings.Join(methods, ", ")
	p.headers = strings.Join(cfg.Headers, ", ")
	p.expose = strings.Join(expose, ", ")
	if cfg.MaxAge > 0 {
		p.maxAge = strconv.Itoa(cfg.MaxAge)
	}
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or ""
// when origin is rejected.
func (p *corsPolicy) allowOrigin(origin string) string {
	switch {
	case p.any:
		return "*"
	case p.echo:
		return origin
	}
	return p.origins[strings.ToLower(origin)]
}

// CORS answers preflight requests and decorates actual cross-origin
// responses.
func CORS(cfg CORSConfig) Middleware {
	p := newCORSPolicy(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if !p.any {
				h.Add("Vary", "Origin")
			}
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			allow := p.allowOrigin(origin)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Add("Vary", "Access-Control-Request-Method")
				h.Add("Vary", "Access-Control-Request-Headers")
				if allow != "" {
					h.Set("Access-Control-Allow-Origin", allow)
					h.Set("Access-Control-Allow-Methods", p.methods)
					switch {
					case p.headers != "":
						h.Set("Access-Control-Allow-Headers", p.headers)
					case r.Header.Get("Access-Control-Request-Headers") != "":
						h.Set("Access-Control-Allow-Headers", r.Header.Get("Access-Control-Request-Headers"))
					}
					if p.credentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					if p.maxAge != "" {
						h.Set("Access-Control-Max-Age", p.maxAge)
					}
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allow != "" {
				h.Set("Access-Control-Allow-Origin", allow)
				h.Set("Access-Control-Expose-Headers", p.expose)
				if p.credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
