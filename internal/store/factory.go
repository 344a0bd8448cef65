package store

import (
	"errors"
	"strings"
)

const (
	EngineJSON   = "json"
	EngineSQLite = "sqlite"
)

// NewByEngine selects a persistence engine by name. JSON is the default:
// it mirrors the single-blob local storage the platform started with.
func NewByEngine(engine, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineJSON:
		return NewJSONStore(path), nil
	case EngineSQLite:
		return NewSQLite(path)
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
