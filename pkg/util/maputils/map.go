package maputils

import "strings"

// GetNested resolves a dot-separated key path against nested maps.
// It returns the default value when any segment of the path is missing.
func GetNested(data map[string]any, keyPath string, defaultValue any) any {
	keys := strings.Split(keyPath, ".")
	var current any = data

	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return defaultValue
		}
		current, ok = m[key]
		if !ok {
			return defaultValue
		}
	}

	if current == nil {
		return defaultValue
	}
	return current
}

// FilterKeys returns a copy of the given map containing only the listed keys.
func FilterKeys[V any](data map[string]V, keys []string) map[string]V {
	allowed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		allowed[key] = struct{}{}
	}

	result := make(map[string]V)
	for key, value := range data {
		if _, ok := allowed[key]; ok {
			result[key] = value
		}
	}
	return result
}

// ExcludeKeys returns a copy of the given map without the listed keys.
func ExcludeKeys[V any](data map[string]V, keys []string) map[string]V {
	excluded := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		excluded[key] = struct{}{}
	}

	result := make(map[string]V)
	for key, value := range data {
		if _, ok := excluded[key]; !ok {
			result[key] = value
		}
	}
	return result
}

// Merge combines the given maps left to right, later values winning.
func Merge[V any](maps ...map[string]V) map[string]V {
	result := make(map[string]V)
	for _, m := range maps {
		for key, value := range m {
			result[key] = value
		}
	}
	return result
}
