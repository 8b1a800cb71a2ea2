package server

import (
	"net/http"

	"caesar/internal/ctxlog"
)

type rech struct {
	next http.Handler
	err  http.Handler
}

func newRecover(next, err http.Handler) *rech {
	return &rech{
		next: next,
		err:  err,
	}
}

func (rec *rech) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if err := recover(); err != nil {
			if err == http.ErrAbortHandler {
				panic(err)
			}

			log := ctxlog.Get(r.Context())
			log.Error("recovered panic", "error", err)

			clear(w.Header())
			rec.err.ServeHTTP(w, r)
		}
	}()

	rec.next.ServeHTTP(w, r)
}
