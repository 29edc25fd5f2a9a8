package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the `db` tagged fields of model.
// Columns listed in skip (typically generated ones such as id) are left out.
func InsertModel(table string, model any, suffix string, skip ...string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model, skip)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel builds an UPDATE setting every `db` tagged field of model except skip.
func UpdateModel(table string, model any, where []Condition, suffix string, skip ...string) (string, []any, error) {
	b, err := UpdateFromModel(table, model, skip...)
	if err != nil {
		return "", nil, err
	}
	return b.Where(where...).Suffix(suffix).ToSQL()
}

// UpdateFromModel returns an UpdateBuilder preloaded with the model's columns so
// callers can add expressions such as updated_at = NOW().
func UpdateFromModel(table string, model any, skip ...string) (*UpdateBuilder, error) {
	cols, vals, err := columnsAndValuesFromModel(model, skip)
	if err != nil {
		return nil, err
	}
	b := Update(table)
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b, nil
}

func columnsAndValuesFromModel(model any, skip []string) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, col := range skip {
		skipped[col] = struct{}{}
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		col := strings.TrimSpace(strings.Split(field.Tag.Get("db"), ",")[0])
		if col == "" || col == "-" {
			continue
		}
		if _, ok := skipped[col]; ok {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
