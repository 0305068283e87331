// Package middleware ...
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheSize = 128

type response struct {
	code   int
	header http.Header
	body   []byte
}

// Cached caches successful responses of handler by request uri for ttl.
func Cached(ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	cache := expirable.NewLRU[string, response](cacheSize, nil, ttl)

	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.RequestURI()

		c, ok := cache.Get(key)
		if !ok {
			rec := httptest.NewRecorder()
			handler(rec, r)

			c = response{
				code:   rec.Code,
				header: rec.Header().Clone(),
				body:   rec.Body.Bytes(),
			}

			if c.code == http.StatusOK {
				cache.Add(key, c)
			}
		}

		for k, v := range c.header {
			w.Header()[k] = append([]string(nil), v...)
		}

		w.WriteHeader(c.code)
		_, _ = w.Write(c.body)
	}
}
