package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a free-form object stored in a JSONB column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) { return marshalJSONB(m) }
func (m *JSONMap) Scan(src any) error          { return unmarshalJSONB(src, m) }

// StringList is an ordered list stored in a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return marshalJSONB([]string(l))
}
func (l *StringList) Scan(src any) error { return unmarshalJSONB(src, l) }

// marshalJSONB returns text, not bytes, so the simple query protocol sends a json literal rather than bytea.
func marshalJSONB(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func unmarshalJSONB(src, dst any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}
