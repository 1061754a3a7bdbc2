package repositories

import (
	"github.com/Masterminds/squirrel"
)

// PatchSpec describes how a resource accepts partial updates: which JSON
// keys are recognized and which column each one writes. Keys are applied in
// the order listed; unrecognized payload keys are dropped silently.
type PatchSpec struct {
	Table   string
	Allowed []string
	Columns map[string]string
	KeyCol  string
}

// BuildPartialUpdate composes an UPDATE touching exactly the recognized
// fields present in payload. It returns the statement, its arguments and the
// number of recognized fields. Zero recognized fields yields an empty
// statement; callers must treat that as a no-op, not an error.
func BuildPartialUpdate(sb squirrel.StatementBuilderType, spec PatchSpec, payload map[string]interface{}, key interface{}) (string, []interface{}, int, error) {
	update := sb.Update(spec.Table)
	fields := 0

	for _, k := range spec.Allowed {
		value, ok := payload[k]
		if !ok {
			continue
		}
		col := k
		if spec.Columns != nil {
			if mapped, ok := spec.Columns[k]; ok {
				col = mapped
			}
		}
		update = update.Set(col, value)
		fields++
	}

	if fields == 0 {
		return "", nil, 0, nil
	}

	sql, args, err := update.Where(squirrel.Eq{spec.KeyCol: key}).ToSql()
	if err != nil {
		return "", nil, 0, err
	}
	return sql, args, fields, nil
}
