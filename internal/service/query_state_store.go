package service

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"doctor-directory/internal/domain/entity"
)

var ErrUnknownQueryKey = errors.New("unknown query key")

// QueryStateStore is the single source of truth for the active filters.
// Its canonical encoding is the URL query string; every mutation goes
// through Update or UpdateList, which never leave an empty key behind.
//
// Listeners registered with OnChange run synchronously after every write
// that changes the encoding, in registration order.
type QueryStateStore struct {
	mu        sync.RWMutex
	values    map[string]string
	listeners []func(entity.QueryState)
}

// NewQueryStateStore builds a store from URL query values. Unknown keys,
// empty values and unsupported sort keys are dropped.
func NewQueryStateStore(query url.Values) *QueryStateStore {
	s := &QueryStateStore{values: make(map[string]string)}
	for _, key := range entity.QueryKeys {
		if v, ok := normalize(key, query.Get(key)); ok {
			s.values[key] = v
		}
	}
	return s
}

// ParseQueryStateStore is NewQueryStateStore over a raw query string.
func ParseQueryStateStore(rawQuery string) (*QueryStateStore, error) {
	query, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return nil, fmt.Errorf("parse query state: %w", err)
	}
	return NewQueryStateStore(query), nil
}

// OnChange registers fn to be called with the new state after each change.
func (s *QueryStateStore) OnChange(fn func(entity.QueryState)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Get returns the encoded value of key, or "" when it is not set.
func (s *QueryStateStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// List returns the members of a list-valued key.
func (s *QueryStateStore) List(key string) []string {
	return entity.SplitList(s.Get(key))
}

// Update sets key to value, or removes key when value is empty.
func (s *QueryStateStore) Update(key, value string) error {
	if !slices.Contains(entity.QueryKeys, key) {
		return fmt.Errorf("%w: %q", ErrUnknownQueryKey, key)
	}

	v, ok := normalize(key, value)

	s.mu.Lock()
	old, had := s.values[key]
	switch {
	case !ok && !had, ok && had && old == v:
		s.mu.Unlock()
		return nil
	case ok:
		s.values[key] = v
	default:
		delete(s.values, key)
	}
	state := s.stateLocked()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
	return nil
}

// UpdateList sets key to the delimiter-joined values, or removes key when
// values is empty.
func (s *QueryStateStore) UpdateList(key string, values []string) error {
	return s.Update(key, strings.Join(values, entity.ListDelimiter))
}

// Toggle adds value to a list-valued key, or removes it when present.
func (s *QueryStateStore) Toggle(key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	current := s.List(key)
	if i := slices.Index(current, value); i >= 0 {
		return s.UpdateList(key, slices.Delete(current, i, i+1))
	}
	return s.UpdateList(key, append(current, value))
}

// State returns the typed view of the current selections.
func (s *QueryStateStore) State() entity.QueryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Values returns a copy of the state as URL query values.
func (s *QueryStateStore) Values() url.Values {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := make(url.Values, len(s.values))
	for k, v := range s.values {
		query.Set(k, v)
	}
	return query
}

// Encode returns the canonical URL query string (keys sorted, no "?").
func (s *QueryStateStore) Encode() string {
	return s.Values().Encode()
}

func (s *QueryStateStore) stateLocked() entity.QueryState {
	sortKey, _ := entity.ParseSortKey(s.values[entity.QueryKeySort])
	return entity.QueryState{
		Name:        s.values[entity.QueryKeyName],
		Mode:        s.values[entity.QueryKeyMode],
		Specialties: entity.SplitList(s.values[entity.QueryKeySpecialty]),
		Sort:        sortKey,
	}
}

// normalize returns the stored form of value and false when the key
// should be absent.
func normalize(key, value string) (string, bool) {
	switch {
	case entity.IsListKey(key):
		value = strings.Join(entity.SplitList(value), entity.ListDelimiter)
	case key == entity.QueryKeySort:
		sortKey, ok := entity.ParseSortKey(strings.TrimSpace(value))
		if !ok {
			return "", false
		}
		value = string(sortKey)
	}
	return value, value != ""
}
