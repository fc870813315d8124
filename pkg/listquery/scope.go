package listquery

import (
	"encoding/json"
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// columnPattern limits filter and sort fields to plain column identifiers.
// Anything else is dropped rather than interpolated into SQL.
var columnPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var sqlOperators = map[Operator]string{
	OpEq:  "=",
	OpGt:  ">",
	OpGte: ">=",
	OpLt:  "<",
	OpLte: "<=",
}

// Where returns a gorm scope applying the filter conditions. The query stays
// deferred; nothing executes until the caller runs it. Columns named in
// jsonArrays hold JSON string arrays; equality and member-of-set on them
// match against the array elements instead of the raw column.
func Where(conds []Condition, jsonArrays ...string) func(*gorm.DB) *gorm.DB {
	jsonCols := make(map[string]struct{}, len(jsonArrays))
	for _, col := range jsonArrays {
		jsonCols[col] = struct{}{}
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, cond := range conds {
			if !columnPattern.MatchString(cond.Field) {
				continue
			}

			value := cond.Value
			// A literal kept from an unrecognized nested token binds as its
			// JSON text: a harmless filter that never fails the query.
			if literal, ok := value.(map[string]string); ok {
				encoded, err := json.Marshal(literal)
				if err != nil {
					continue
				}
				value = string(encoded)
			}

			if _, jsonCol := jsonCols[cond.Field]; jsonCol {
				db = whereJSONArray(db, cond, value)
				continue
			}

			if cond.Op == OpIn {
				db = db.Where(fmt.Sprintf("%s IN ?", cond.Field), value)
				continue
			}
			op, ok := sqlOperators[cond.Op]
			if !ok {
				continue
			}
			db = db.Where(fmt.Sprintf("%s %s ?", cond.Field, op), value)
		}
		return db
	}
}

// whereJSONArray matches a jsonb string array column by unnesting it, so
// careers[in]=Web Development hits bootcamps whose array contains the value.
// Ordering comparisons are meaningless on an array and are dropped.
func whereJSONArray(db *gorm.DB, cond Condition, value any) *gorm.DB {
	switch cond.Op {
	case OpIn:
		return db.Where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(%s) AS elem(value) WHERE elem.value IN ?)",
			cond.Field), value)
	case OpEq:
		return db.Where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(%s) AS elem(value) WHERE elem.value = ?)",
			cond.Field), value)
	default:
		return db
	}
}

// Apply returns a gorm scope adding projection, multi-key sort and the
// pagination window on top of a filtered query. The identifier column is
// always projected so association loading and clients keep a stable handle.
func Apply(d Directives) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(d.Select) > 0 {
			fields := []string{"id"}
			for _, field := range d.Select {
				if columnPattern.MatchString(field) && field != "id" {
					fields = append(fields, field)
				}
			}
			db = db.Select(fields)
		}

		for _, key := range d.Sort {
			if !columnPattern.MatchString(key.Field) {
				continue
			}
			direction := "ASC"
			if key.Desc {
				direction = "DESC"
			}
			db = db.Order(fmt.Sprintf("%s %s", key.Field, direction))
		}

		page := d.Page
		if page < 1 {
			page = DefaultPage
		}
		limit := d.Limit
		if limit < 1 {
			limit = DefaultLimit
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
