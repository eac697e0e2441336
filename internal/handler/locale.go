package handler

import (
	"net/http"
	"slices"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/harshita-store/internal/domain/locale"
)

func writeLocale(w http.ResponseWriter, lang locale.Language) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("language")
		e.Str(string(lang))
		e.FieldStart("supported")
		encodeLanguages(e, locale.Supported())
		e.ObjEnd()
	})
}

// GetLocale returns the session language.
func (h *Handler) GetLocale(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeLocale(w, sess.Locale.Language())
}

// SetLocale switches the session language.
func (h *Handler) SetLocale(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var code string
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "language" {
			return d.Skip()
		}
		var err error
		code, err = d.Str()
		return err
	}); err != nil {
		writeError(w, http.StatusBadRequest, "language is required")
		return
	}

	lang, err := sess.Locale.SetLanguage(r.Context(), code)
	if errors.Is(err, locale.ErrUnsupportedLanguage) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeLocale(w, lang)
}

// Translations returns the session translation of every requested key, or of
// every key when none is given. Unknown keys translate to themselves.
func (h *Handler) Translations(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	keys := slices.Compact(slices.Sorted(slices.Values(r.URL.Query()["key"])))
	if len(keys) == 0 {
		keys = make([]string, len(locale.Keys))
		for i, k := range locale.Keys {
			keys[i] = string(k)
		}
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("language")
		e.Str(string(sess.Locale.Language()))
		e.FieldStart("translations")
		e.ObjStart()
		for _, k := range keys {
			e.FieldStart(k)
			e.Str(sess.Locale.Translate(k))
		}
		e.ObjEnd()
		e.ObjEnd()
	})
}
