package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// gdataObject groups every value this store writes.
const gdataObject = "scores"

// GdataStore keeps values in the per-user game data directory managed by
// gdata. It has no score history.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the data directory for appName, creating it if needed.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata %q: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

// Get reads an integer value. A missing key reports ok == false; a value
// that is not an integer is an error.
func (s *GdataStore) Get(key string) (int, bool, error) {
	if !s.m.ObjectPropExists(gdataObject, key) {
		return 0, false, nil
	}
	data, err := s.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("storage: malformed %q: %w", key, err)
	}
	return v, true, nil
}

// Set writes an integer value. A stored value is never lowered; a
// malformed one is replaced.
func (s *GdataStore) Set(key string, value int) error {
	if old, ok, err := s.Get(key); err == nil && ok && old >= value {
		return nil
	}
	if err := s.m.SaveObjectProp(gdataObject, key, []byte(strconv.Itoa(value))); err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}
