// Package config holds the installer configuration store: the key/value map the installer runtime keeps for the
// duration of an install session.
package config

// Store is the configuration surface the installer hooks depend on
type Store interface {
	Get(key string) interface{}
	GetString(key string) string
	Set(key string, value interface{}) error
	IsSet(key string) bool
	AllKeys() []string
}

var (
	_ Store = &Instance{}
	_ Store = &Map{}
)

// Values returns a snapshot of every key in the store as strings
func Values(s Store) map[string]string {
	result := map[string]string{}
	for _, k := range s.AllKeys() {
		result[k] = s.GetString(k)
	}
	return result
}
