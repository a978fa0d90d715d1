package config

// mergeMaps merges override into base and returns the result. Nested maps
// are merged key by key; any other value in override replaces the base
// value. Neither input is modified.
func mergeMaps(base, override map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		result[k] = v
	}

	for key, value := range override {
		if baseMap, ok := result[key].(map[string]interface{}); ok {
			if overrideMap, ok := value.(map[string]interface{}); ok {
				result[key] = mergeMaps(baseMap, overrideMap)
				continue
			}
		}
		result[key] = value
	}
	return result
}
