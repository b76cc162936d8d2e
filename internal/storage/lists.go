package storage

import "encoding/json"

// EncodeList converts a list-valued field to its stored form, a JSON array.
func EncodeList(values []string) string {
	if values == nil {
		values = []string{}
	}

	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}

	return string(data)
}

// DecodeList converts a stored list back. Malformed, empty and null values
// decode to an empty list, never to an error.
func DecodeList(raw string) []string {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		return []string{}
	}

	return values
}
