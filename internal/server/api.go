package server

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"time"

	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"caesar/internal/rot"
	"caesar/internal/rotate"
)

// requestError is an error caused by the client, reported with status 400.
type requestError struct {
	msg string
}

func (e *requestError) Error() string {
	return e.msg
}

func badRequest(format string, a ...any) error {
	return &requestError{msg: fmt.Sprintf(format, a...)}
}

type api struct {
	defaults   Defaults
	batchLimit int
	maxTexts   int
}

type textsResponse struct {
	Texts []string `json:"texts"`
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, err error) {
	if re := (*requestError)(nil); errors.As(err, &re) {
		writeError(w, r, http.StatusBadRequest, re.msg)
		return
	}

	log := ctxlog.Get(r.Context())
	log.Error("request failed", "error", err)
	writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func formChar(r *http.Request, field string, def rune) (rune, error) {
	v := r.PostForm.Get(field)
	if v == "" {
		return def, nil
	}

	var c rot.Char
	if err := c.UnmarshalText([]byte(v)); err != nil {
		return 0, badRequest("%s must be a single character or U+XXXX", field)
	}
	return rune(c), nil
}

// formShift parses the shift field, falling back to def when the field is absent.
// A nil def makes the field required.
func formShift(r *http.Request, def *int) (int, error) {
	v := r.PostForm.Get("shift")
	if v == "" {
		if def != nil {
			return *def, nil
		}
		return 0, badRequest("shift is required")
	}

	shift, err := strconv.Atoi(v)
	if err != nil {
		return 0, badRequest("shift must be a whole number")
	}
	return shift, nil
}

// formCipher builds the cipher named by the profile field,
// or from the shift, low and high fields and the server defaults.
func (a *api) formCipher(r *http.Request) (rotate.Cipher, error) {
	if name := r.PostForm.Get("profile"); name != "" {
		p, ok, err := db.GetProfile(name)
		if err != nil {
			return rotate.Cipher{}, err
		}
		if !ok {
			return rotate.Cipher{}, badRequest("unknown profile %q", name)
		}

		c, err := p.Cipher()
		if err != nil {
			return rotate.Cipher{}, fmt.Errorf("profile %q: %w", name, err)
		}
		return c, nil
	}

	shift, err := formShift(r, a.defaults.Shift)
	if err != nil {
		return rotate.Cipher{}, err
	}
	low, err := formChar(r, "low", a.defaults.Alphabet.Low)
	if err != nil {
		return rotate.Cipher{}, err
	}
	high, err := formChar(r, "high", a.defaults.Alphabet.High)
	if err != nil {
		return rotate.Cipher{}, err
	}

	c, err := rotate.New(low, high, shift)
	if errors.Is(err, rot.ErrInvalidRange) {
		return rotate.Cipher{}, badRequest("%v", err)
	}
	return c, err
}

func (a *api) transform(decode bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			a.fail(w, r, badRequest("invalid form"))
			return
		}

		texts, ok := r.PostForm["text"]
		if !ok {
			a.fail(w, r, badRequest("text is required"))
			return
		}
		if a.maxTexts > 0 && len(texts) > a.maxTexts {
			a.fail(w, r, badRequest("at most %d texts are allowed", a.maxTexts))
			return
		}

		c, err := a.formCipher(r)
		if err != nil {
			a.fail(w, r, err)
			return
		}

		if decode {
			c = c.Inverse()
		}

		out, err := rotate.All(r.Context(), texts, c.EncodeString, a.batchLimit)
		if err != nil {
			a.fail(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, textsResponse{Texts: out})
	})
}

func (a *api) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := maps.Collect(db.All())
	writeJSON(w, r, http.StatusOK, profiles)
}

func (a *api) putProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !db.ValidName(name) {
		a.fail(w, r, badRequest("invalid profile name %q", name))
		return
	}

	if err := r.ParseForm(); err != nil {
		a.fail(w, r, badRequest("invalid form"))
		return
	}

	// Stored profiles always carry an explicit shift
	shift, err := formShift(r, nil)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	low, err := formChar(r, "low", a.defaults.Alphabet.Low)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	high, err := formChar(r, "high", a.defaults.Alphabet.High)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	p := db.Profile{Low: rot.Char(low), High: rot.Char(high), Shift: shift, Created: time.Now()}
	err = db.SetProfile(name, p)
	if errors.Is(err, rot.ErrInvalidRange) {
		err = badRequest("%v", err)
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}

	ctxlog.Get(r.Context()).Info("profile stored", "profile", name)

	p, _, err = db.GetProfile(name)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

func (a *api) deleteProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	existed, err := db.DeleteProfile(name)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !existed {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown profile %q", name))
		return
	}

	ctxlog.Get(r.Context()).Info("profile deleted", "profile", name)
	w.WriteHeader(http.StatusNoContent)
}
