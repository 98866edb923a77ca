package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var r rawLevel
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return r.build()
}

// ParseObjectsYAML parses a YAML object table.
func ParseObjectsYAML(data []byte) (Objects, error) {
	var r rawObjects
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Objects{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return r.build()
}
