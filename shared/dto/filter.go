package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq = "eq"
	FilterIsNull     = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq is_null"`
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	switch f.Operator {
	case FilterOperatorEq:
		args[f.Field] = f.Value

		return fmt.Sprintf("%s = :%s", f.Field, f.Field), args
	case FilterIsNull:
		return f.Field + " IS NULL", args
	default:
		return "", args
	}
}

// FilterGroup joins its filters with Operator, AND when empty. Filters holds
// Filter and nested FilterGroup values.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := []string{}

	for _, item := range f.Filters {
		var where string
		var arg map[string]any

		switch fill := item.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+operator+" ")), args
}

// Eq is a single equality filter on column.
func Eq(column string, value any) FilterGroup {
	return FilterGroup{
		Filters: []any{
			Filter{Field: column, Value: value, Operator: FilterOperatorEq},
		},
	}
}
