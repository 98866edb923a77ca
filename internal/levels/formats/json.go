package formats

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (Level, error) {
	var r rawLevel
	if err := json.Unmarshal(data, &r); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return r.build()
}

// ParseObjectsJSON parses a JSON object table.
func ParseObjectsJSON(data []byte) (Objects, error) {
	var r rawObjects
	if err := json.Unmarshal(data, &r); err != nil {
		return Objects{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return r.build()
}
