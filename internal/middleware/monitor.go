package middleware

//go:generate go tool mockery

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"requestsmonitor/internal/monitor"
)

type Interceptor interface {
	Intercept(w http.ResponseWriter, req monitor.Request, next func() error) error
}

// Monitor runs every request through the interceptor. Errors returned by the
// downstream handler are passed back to echo untouched.
func Monitor(m Interceptor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return m.Intercept(c.Response(), describe(c.Request(), c.Scheme()), func() error {
				return next(c)
			})
		}
	}
}

// Handler wraps a plain net/http handler. net/http has no error path, so a
// failure to write the status report panics and the server aborts the response.
func Handler(m Interceptor, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := m.Intercept(w, describe(r, requestScheme(r)), func() error {
			next.ServeHTTP(w, r)
			return nil
		})
		if err != nil {
			panic(err)
		}
	})
}

func describe(r *http.Request, scheme string) monitor.Request {
	return monitor.Request{
		Path:  r.URL.Path,
		URL:   scheme + "://" + r.Host + r.URL.EscapedPath(),
		Query: r.URL.RawQuery,
	}
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
