// Package bunstore holds the key/value fields recorded on spans and
// events. A Store is the concrete FieldSource the rest of the
// pipeline reads from.
package bunstore

import (
	"sync"
	"time"

	"github.com/bunyango/bunyan-go/bunbase"
)

// Field is one recorded key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// Store is an ordered set of fields. Keys are unique: setting a key
// that already exists replaces its value but keeps its original
// position. A Store may be written and read from multiple goroutines.
type Store struct {
	mu     sync.RWMutex
	index  map[string]int
	fields []Field
}

var _ bunbase.FieldSource = &Store{}

func New() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Set records a value for key. The value must be representable by
// encoding/json; anything else surfaces later as a serialization
// failure in the layer that renders it.
func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[key]; ok {
		s.fields[i].Value = value
		return
	}
	s.index[key] = len(s.fields)
	s.fields = append(s.fields, Field{Key: key, Value: value})
}

func (s *Store) String(key string, value string)   { s.Set(key, value) }
func (s *Store) Int(key string, value int)         { s.Set(key, int64(value)) }
func (s *Store) Int64(key string, value int64)     { s.Set(key, value) }
func (s *Store) Uint64(key string, value uint64)   { s.Set(key, value) }
func (s *Store) Float64(key string, value float64) { s.Set(key, value) }
func (s *Store) Bool(key string, value bool)       { s.Set(key, value) }
func (s *Store) Time(key string, value time.Time)  { s.Set(key, value) }
func (s *Store) Any(key string, value interface{}) { s.Set(key, value) }

// Error records err.Error() under key. A nil error records null.
func (s *Store) Error(key string, err error) {
	if err == nil {
		s.Set(key, nil)
		return
	}
	s.Set(key, err.Error())
}

func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.fields[i].Value, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fields)
}

// Range calls f for each field in insertion order until f returns
// false. It iterates over a snapshot so that f may safely write back
// into the Store.
func (s *Store) Range(f func(key string, value interface{}) bool) {
	for _, field := range s.Snapshot() {
		if !f(field.Key, field.Value) {
			return
		}
	}
}

// Snapshot copies the current fields in insertion order.
func (s *Store) Snapshot() []Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := make([]Field, len(s.fields))
	copy(n, s.fields)
	return n
}
