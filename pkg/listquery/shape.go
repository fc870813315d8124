package listquery

import "encoding/json"

// Shape reduces serialized list items to the requested fields plus the
// identifier, so a select directive restricts the response body to exactly
// what was asked for. Items must marshal to a JSON array of objects; fields
// are matched against the serialized key names.
func Shape(items any, fields []string) []map[string]any {
	encoded, err := json.Marshal(items)
	if err != nil {
		return nil
	}

	var rows []map[string]any
	if err := json.Unmarshal(encoded, &rows); err != nil {
		return nil
	}

	keep := map[string]struct{}{"id": {}}
	for _, field := range fields {
		keep[field] = struct{}{}
	}

	for _, row := range rows {
		for key := range row {
			if _, ok := keep[key]; !ok {
				delete(row, key)
			}
		}
	}
	return rows
}
