package listquery

import (
	"net/url"
	"strconv"
	"strings"
)

// Control parameter keys. They shape the result set and are excluded from
// filter translation.
const (
	KeySelect = "select"
	KeySort   = "sort"
	KeyPage   = "page"
	KeyLimit  = "limit"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

// ReservedKeys returns the control keys every list endpoint excludes from
// filtering.
func ReservedKeys() []string {
	return []string{KeySelect, KeySort, KeyPage, KeyLimit}
}

// SortKey is one (field, direction) pair of a multi-key sort.
type SortKey struct {
	Field string
	Desc  bool
}

// Directives are the parsed control parameters of a list request.
type Directives struct {
	Select []string
	Sort   []SortKey
	Page   int
	Limit  int
}

// ParseDirectives reads select/sort/page/limit, applying defaults for absent
// or malformed entries. Sort fields use a leading '-' for descending order
// (sort=-created_at,name); the default sort is newest first.
func ParseDirectives(values url.Values) Directives {
	d := Directives{
		Page:  parsePositive(values.Get(KeyPage), DefaultPage),
		Limit: parsePositive(values.Get(KeyLimit), DefaultLimit),
	}
	if d.Limit > MaxLimit {
		d.Limit = MaxLimit
	}

	for _, field := range strings.Split(values.Get(KeySelect), ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			d.Select = append(d.Select, field)
		}
	}

	for _, entry := range strings.Split(values.Get(KeySort), ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.HasPrefix(entry, "-") {
			d.Sort = append(d.Sort, SortKey{Field: entry[1:], Desc: true})
			continue
		}
		d.Sort = append(d.Sort, SortKey{Field: entry})
	}
	if len(d.Sort) == 0 {
		d.Sort = []SortKey{{Field: "created_at", Desc: true}}
	}

	return d
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
