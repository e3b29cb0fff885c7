// AngelaMos | 2026
// types.go

package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList maps a Postgres jsonb column to []string. Used for store
// categories and post image lists.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}

	return string(data), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}

	*l = out
	return nil
}
