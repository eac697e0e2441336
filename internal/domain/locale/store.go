package locale

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// Storage is the durable key-value medium holding the language preference.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// persistTimeout bounds a preference write, which is detached from the
// caller's cancellation.
const persistTimeout = 5 * time.Second

// Store holds the language of one session.
type Store struct {
	storage Storage
	key     string

	mu   sync.RWMutex
	lang Language
}

// NewStore creates a Store and reads the persisted language once. A missing,
// unreadable or unsupported value leaves the default language.
func NewStore(ctx context.Context, storage Storage, key string) *Store {
	s := &Store{storage: storage, key: key, lang: Default}

	raw, ok, err := storage.Get(ctx, key)
	switch {
	case err != nil:
		zctx.From(ctx).Warn("Read language preference", zap.String("key", key), zap.Error(err))
	case ok:
		if lang, err := ParseLanguage(raw); err == nil {
			s.lang = lang
		} else {
			zctx.From(ctx).Debug("Ignore stored language", zap.String("key", key), zap.String("value", raw))
		}
	}
	return s
}

// Language returns the current language.
func (s *Store) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage switches the language and persists it. Unsupported codes are
// rejected with ErrUnsupportedLanguage and leave the language unchanged.
func (s *Store) SetLanguage(ctx context.Context, code string) (Language, error) {
	lang, err := ParseLanguage(code)
	if err != nil {
		return s.Language(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := s.storage.Set(wctx, s.key, string(lang)); err != nil {
		zctx.From(ctx).Warn("Persist language preference",
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
	return lang, nil
}

// T resolves key in the current language.
func (s *Store) T(key Key) string {
	return T(s.Language(), key)
}

// Translate resolves an arbitrary key string in the current language.
func (s *Store) Translate(key string) string {
	return Translate(s.Language(), key)
}
