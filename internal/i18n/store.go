// Package i18n provides the process-wide localization store. It is built
// as an explicitly constructed, injectable object: the program creates one
// Store and passes it to every consumer instead of mutating package state.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const DefaultLanguage = "en"

// supported lists the shipped translation trees, in matcher priority order.
var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var supportedCodes = []string{"en", "es"}

// Observer is notified synchronously whenever the language changes. An
// observer must not call SetLanguage itself; there is no reentrancy guard
// and doing so is undefined behavior.
type Observer func(lang string)

// Persister stores the selected language across runs. Load is called once
// at construction, Save on every change.
type Persister interface {
	Load() (string, error)
	Save(code string) error
}

type subscriber struct {
	id int
	fn Observer
}

type Store struct {
	logger  *zap.Logger
	persist Persister
	matcher language.Matcher
	bundles map[string]map[string]any

	mu        sync.RWMutex
	lang      string
	observers []subscriber
	nextID    int
}

// NewStore loads the embedded translation trees and restores the persisted
// language, falling back to English. All trees are available synchronously
// from here on; Translate never fetches anything.
func NewStore(persist Persister, logger ...*zap.Logger) (*Store, error) {
	l := zap.L().Named("i18n.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("i18n.store")
	}

	bundles := make(map[string]map[string]any, len(supportedCodes))
	for _, code := range supportedCodes {
		raw, err := localeFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", code, err)
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", code, err)
		}
		bundles[code] = tree
	}

	s := &Store{
		logger:  l,
		persist: persist,
		matcher: language.NewMatcher(supported),
		bundles: bundles,
		lang:    DefaultLanguage,
	}

	if persist != nil {
		if saved, err := persist.Load(); err != nil {
			l.Warn("load persisted language failed", zap.Error(err))
		} else if code, ok := s.match(saved); ok {
			s.lang = code
		}
	}
	return s, nil
}

// Language returns the active language code.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage switches the active language, persists the choice, and
// notifies every observer in registration order before returning.
// Unsupported codes are rejected without touching the current state.
func (s *Store) SetLanguage(code string) error {
	normalized, ok := s.match(code)
	if !ok {
		return fmt.Errorf("unsupported language %q", code)
	}

	s.mu.Lock()
	s.lang = normalized
	observers := make([]subscriber, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.Save(normalized); err != nil {
			s.logger.Warn("persist language failed", zap.Error(err))
		}
	}

	for _, sub := range observers {
		sub.fn(normalized)
	}

	s.logger.Debug("language changed", zap.String("language", normalized))
	return nil
}

// Subscribe registers an observer and returns its unsubscribe func.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Translate resolves a dot-separated key through the active language's
// tree. Any missing segment or non-string leaf returns the key unchanged
// so a missing string can never break the caller. Occurrences of
// {{name}} are replaced with the stringified param value.
func (s *Store) Translate(key string, params map[string]any) string {
	s.mu.RLock()
	tree := s.bundles[s.lang]
	s.mu.RUnlock()
	if tree == nil {
		tree = s.bundles[DefaultLanguage]
	}

	var value any = map[string]any(tree)
	for _, segment := range strings.Split(key, ".") {
		node, ok := value.(map[string]any)
		if !ok {
			s.logger.Debug("translation key not found", zap.String("key", key))
			return key
		}
		value, ok = node[segment]
		if !ok {
			s.logger.Debug("translation key not found", zap.String("key", key))
			return key
		}
	}

	text, ok := value.(string)
	if !ok {
		s.logger.Debug("translation value is not a string", zap.String("key", key))
		return key
	}

	for name, param := range params {
		text = strings.ReplaceAll(text, "{{"+name+"}}", fmt.Sprint(param))
	}
	return text
}

// match normalizes a code like "en-US" onto a supported tree, reporting
// false when nothing matches with any confidence.
func (s *Store) match(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, idx, conf := s.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return supportedCodes[idx], true
}
