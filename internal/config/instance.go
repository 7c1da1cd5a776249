package config

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
	_ "modernc.org/sqlite"

	C "github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/logging"
)

// Instance is a Store persisted to a sqlite database, so an install session can be inspected or resumed by a later
// process
type Instance struct {
	dir    string
	mu     sync.Mutex
	lock   *flock.Flock
	db     *sql.DB
	closed bool
}

// New opens, or creates, the session database in dir
func New(dir string) (*Instance, error) {
	if dir == "" {
		return nil, errs.New("Session directory cannot be empty")
	}

	// Ensure the session dir exists, because the sqlite driver sure doesn't
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errs.Wrap(err, "Could not create session dir")
	}

	i := &Instance{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, C.SessionLockFileName)),
	}

	path := filepath.Join(dir, C.SessionFileName)
	var err error
	i.db, err = sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.Wrap(err, "Could not create sqlite connection to %s", path)
	}

	err = i.withLock(func() error {
		_, err := i.db.Exec(`CREATE TABLE IF NOT EXISTS config (key string NOT NULL PRIMARY KEY, value text)`)
		return err
	})
	if err != nil {
		i.db.Close()
		return nil, errs.Wrap(err, "Could not seed session database")
	}

	return i, nil
}

func (i *Instance) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return nil
	}
	i.closed = true
	return i.db.Close()
}

// withLock serializes fn against this and any other process sharing the session dir
func (i *Instance) withLock(fn func() error) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.lock.Lock(); err != nil {
		return errs.Wrap(err, "Could not acquire session lock")
	}
	defer func() {
		if err := i.lock.Unlock(); err != nil {
			logging.Warning("Could not release session lock: %v", err)
		}
	}()

	return fn()
}

// GetThenSet updates a value at the given key. The valueF argument returns the new value to set based on the
// previous one. If the function returns with an error, the update is cancelled. No other process or thread can modify
// the key between reading the old value and setting the new one.
func (i *Instance) GetThenSet(key string, valueF func(currentValue interface{}) (interface{}, error)) error {
	return i.withLock(func() error {
		return i.setWithCallback(key, valueF)
	})
}

const CancelSet = "__CANCEL__"

func (i *Instance) setWithCallback(key string, valueF func(currentValue interface{}) (interface{}, error)) error {
	v, err := valueF(i.Get(key))
	if err != nil {
		return errs.Wrap(err, "valueF failed")
	}

	if v == CancelSet {
		return nil
	}

	valueMarshaled, err := yaml.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "Could not marshal config value: %v", v)
	}

	_, err = i.db.Exec(`INSERT OR REPLACE INTO config(key, value) VALUES(?,?)`, key, string(valueMarshaled))
	if err != nil {
		return errs.Wrap(err, "Could not store setting")
	}

	logging.Debug("Session set %s=%v", key, v)
	return nil
}

// Set sets a value at the given key.
func (i *Instance) Set(key string, value interface{}) error {
	return i.GetThenSet(key, func(_ interface{}) (interface{}, error) {
		return value, nil
	})
}

func (i *Instance) IsSet(key string) bool {
	return i.Get(key) != nil
}

func (i *Instance) Get(key string) interface{} {
	row := i.db.QueryRow(`SELECT value FROM config WHERE key=?`, key)
	if row.Err() != nil {
		logging.Error("config:get query failed: %s", errs.JoinMessage(row.Err()))
		return nil
	}

	var value string
	if err := row.Scan(&value); err != nil {
		return nil // No results
	}

	var result interface{}
	if err := yaml.Unmarshal([]byte(value), &result); err != nil {
		if err2 := json.Unmarshal([]byte(value), &result); err2 != nil {
			logging.Error("config:get unmarshal failed: %s (json err: %s)", errs.JoinMessage(err), errs.JoinMessage(err2))
			return nil
		}
	}

	return result
}

// GetString retrieves a string for a given key
func (i *Instance) GetString(key string) string {
	return cast.ToString(i.Get(key))
}

// AllKeys returns all of the current config keys
func (i *Instance) AllKeys() []string {
	rows, err := i.db.Query(`SELECT key FROM config ORDER BY key`)
	if err != nil {
		logging.Error("config:AllKeys query failed: %s", errs.JoinMessage(err))
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			logging.Error("config:AllKeys scan failed: %s", errs.JoinMessage(err))
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// ConfigPath returns the directory the session is stored in
func (i *Instance) ConfigPath() string {
	return i.dir
}
