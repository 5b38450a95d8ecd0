package databasetypes

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray stores an ordered list of strings as a JSON-encoded TEXT column.
type StringArray []string

// Value Marshal
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	return json.Marshal(a)
}

// Scan Unmarshal
func (a *StringArray) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = StringArray{}
		return nil
	default:
		return errors.New("type assertion to []byte failed")
	}
}
