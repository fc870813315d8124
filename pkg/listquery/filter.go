// Package listquery turns raw request query parameters into a deferred,
// database-ready list query: a filter predicate, field projection, sort order
// and a pagination window. Every list endpoint goes through it.
package listquery

import (
	"net/url"
	"sort"
	"strings"
)

// Operator is a comparison operator recognized inside a field[op]=value key.
type Operator string

const (
	OpEq  Operator = "eq"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
	OpIn  Operator = "in"
)

// operators is the full allow-list. Anything else nested inside a key is not
// an operator and stays part of a literal equality filter.
var operators = map[string]Operator{
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
	"in":  OpIn,
}

// Condition is one (field, operator, value) filter entry. Value is the
// verbatim query string for comparison operators, a []any of strings for
// OpIn, and a map[string]string when an unrecognized nested token was kept
// as a literal value. Values are never retyped from their shape: "02118"
// must stay "02118", not become 2118. The database casts parameters against
// typed columns on its own.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Translate converts query parameters into filter conditions, skipping the
// reserved control keys. It never fails: malformed keys simply become literal
// equality filters. An empty input yields an empty predicate.
func Translate(values url.Values, reserved ...string) []Condition {
	skip := make(map[string]struct{}, len(reserved))
	for _, key := range reserved {
		skip[key] = struct{}{}
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	// Deterministic output regardless of map iteration order.
	sort.Strings(keys)

	conds := make([]Condition, 0, len(keys))
	for _, key := range keys {
		if _, ok := skip[key]; ok {
			continue
		}
		raw := values[key]
		if len(raw) == 0 {
			continue
		}

		field, token, nested := splitKey(key)
		switch {
		case nested:
			op, known := operators[token]
			if !known {
				// Unknown token: keep it untouched inside a literal value.
				conds = append(conds, Condition{Field: field, Op: OpEq, Value: map[string]string{token: raw[0]}})
				continue
			}
			if op == OpIn {
				conds = append(conds, Condition{Field: field, Op: OpIn, Value: splitList(raw)})
				continue
			}
			conds = append(conds, Condition{Field: field, Op: op, Value: raw[0]})
		case len(raw) > 1:
			// Repeated plain keys collapse to member-of-set.
			conds = append(conds, Condition{Field: field, Op: OpIn, Value: splitList(raw)})
		default:
			conds = append(conds, Condition{Field: field, Op: OpEq, Value: raw[0]})
		}
	}

	return conds
}

// splitKey recognizes the field[token] convention. The returned field is the
// outer key; nested reports whether a bracketed token was present.
func splitKey(key string) (field, token string, nested bool) {
	open := strings.Index(key, "[")
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}

// splitList flattens repeated values and comma-separated entries into one set.
func splitList(raw []string) []any {
	var out []any
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
