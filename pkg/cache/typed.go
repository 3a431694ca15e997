package cache

import (
	"encoding/json"
	"fmt"
)

// GetTyped deserializes a cached JSON value into T. Returns the zero value
// and false if the key is missing, expired, or not valid JSON for T.
func GetTyped[T any](s *Store, key string) (T, bool) {
	var v T
	data, ok := s.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// PutTyped serializes value as JSON and stores it with the store's TTL.
func PutTyped[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal typed value for %q: %w", key, err)
	}
	return s.Put(key, data)
}
