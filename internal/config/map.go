package config

import (
	"sort"
	"sync"

	"github.com/spf13/cast"
)

// Map is an in-memory Store, used for dry runs and whenever no session is persisted
type Map struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// NewMap returns a Map seeded with the given values
func NewMap(seed map[string]interface{}) *Map {
	m := &Map{values: map[string]interface{}{}}
	for k, v := range seed {
		m.values[k] = v
	}
	return m
}

func (m *Map) Get(key string) interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key]
}

func (m *Map) Set(key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Map) IsSet(key string) bool {
	return m.Get(key) != nil
}

func (m *Map) AllKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Map) GetString(key string) string {
	return cast.ToString(m.Get(key))
}
