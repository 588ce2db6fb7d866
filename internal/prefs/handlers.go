package prefs

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"cabinadmin/internal/api"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

const maxValueBytes = 16 << 10

type Handlers struct {
	KV KV
}

type Response struct {
	Key    string          `json:"key"`
	Value  json.RawMessage `json:"value"`
	Source Source          `json:"source"`
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !validKey.MatchString(key) {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid key")
		return
	}

	l, err := Load(r.Context(), h.KV, key, json.RawMessage("null"))
	if err != nil {
		log.Printf("[prefs] get %q failed: %v", key, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if l.Source == SourceMalformed {
		log.Printf("[prefs] stored value for %q is malformed, using default: %v", key, l.Err)
	}

	api.WriteJSON(w, http.StatusOK, Response{Key: key, Value: l.Value, Source: l.Source})
}

func (h Handlers) Put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !validKey.MatchString(key) {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid key")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxValueBytes+1))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unreadable body")
		return
	}
	if len(body) > maxValueBytes {
		api.WriteError(w, http.StatusRequestEntityTooLarge, "VALUE_TOO_LARGE", "value exceeds 16KiB")
		return
	}
	if !json.Valid(body) {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "value must be valid json")
		return
	}

	if err := Save(r.Context(), h.KV, key, json.RawMessage(body)); err != nil {
		log.Printf("[prefs] put %q failed: %v", key, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, Response{Key: key, Value: body, Source: SourceStored})
}
