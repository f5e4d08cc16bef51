package app

import (
	"strings"
)

// parseFieldsOverride parses "key=value,key2=value2". Malformed pairs and
// empty keys are skipped.
func parseFieldsOverride(override string) map[string]string {
	if override == "" {
		return nil
	}
	parsed := make(map[string]string)
	pairs := strings.Split(override, ",")
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		parsed[key] = strings.TrimSpace(parts[1])
	}
	if len(parsed) == 0 {
		return nil
	}
	return parsed
}
