package server

import (
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"time"
)

type throttleBucket struct {
	ticker  *time.Ticker
	tickets chan struct{}
}

// throttle limits each remote host, hashed into a fixed number of buckets,
// to maxConcurrent requests in flight and one request started per period.
type throttle struct {
	buckets         []throttleBucket
	tooManyRequests http.Handler
}

func newThrottle(buckets int, period time.Duration, maxConcurrent int, tooManyRequests http.Handler) *throttle {
	b := make([]throttleBucket, buckets)
	for i := range buckets {
		b[i] = throttleBucket{
			ticker:  time.NewTicker(period),
			tickets: make(chan struct{}, maxConcurrent),
		}
	}

	return &throttle{
		buckets:         b,
		tooManyRequests: tooManyRequests,
	}
}

func (t *throttle) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var bucket int
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			h := fnv.New64()
			io.WriteString(h, host)
			bucket = int(h.Sum64() % uint64(len(t.buckets)))
		}

		b := &t.buckets[bucket]

		select {
		case b.tickets <- struct{}{}:
			defer func() { <-b.tickets }()

			select {
			case <-b.ticker.C:
			case <-r.Context().Done():
				return
			}
			next.ServeHTTP(w, r)

		default:
			t.tooManyRequests.ServeHTTP(w, r)
		}
	})
}

func (t *throttle) stop() {
	for _, b := range t.buckets {
		b.ticker.Stop()
	}
}
