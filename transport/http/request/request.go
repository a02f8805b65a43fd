package request

import (
	"fmt"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/model"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathID reads a positive numeric path parameter.
func PathID(r *http.Request, param string) (int64, error) {
	id, err := shared.ConvertStringToInt64(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// Filters collects query string filters. Absent parameters add nothing and
// each filter binds under its parameter name so joined columns never clash.
type Filters struct {
	query map[string][]string
	group gDto.FilterGroup
	err   error
}

func NewFilters(r *http.Request) *Filters {
	return &Filters{
		query: r.URL.Query(),
		group: gDto.And(),
	}
}

func (f *Filters) get(param string) string {
	values := f.query[param]
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

func (f *Filters) add(param, table, field, operator string, value any) {
	f.group.Add(gDto.Filter{
		ArgName:  param,
		Field:    field,
		Value:    value,
		Operator: operator,
		Table:    table,
	})
}

func (f *Filters) Eq(param, table, field string) *Filters {
	if value := f.get(param); value != "" {
		f.add(param, table, field, gDto.FilterOperatorEq, value)
	}

	return f
}

func (f *Filters) Like(param, table, field string) *Filters {
	if value := f.get(param); value != "" {
		f.add(param, table, field, gDto.FilterOperatorLike, value)
	}

	return f
}

func (f *Filters) ID(param, table, field string) *Filters {
	return f.Int64(param, table, field, gDto.FilterOperatorEq)
}

func (f *Filters) Int64(param, table, field, operator string) *Filters {
	value := f.get(param)
	if value == "" {
		return f
	}

	parsed, err := shared.ConvertStringToInt64(value)
	if err != nil {
		f.fail(fmt.Sprintf("%s must be a number", param))

		return f
	}

	f.add(param, table, field, operator, parsed)

	return f
}

// Date adds a calendar date bound; operator is usually greater_eq or less_eq.
func (f *Filters) Date(param, table, field, operator string) *Filters {
	value := f.get(param)
	if value == "" {
		return f
	}

	date, err := model.ParseDate(value)
	if err != nil {
		f.fail(fmt.Sprintf("%s must be a date formatted as yyyy-MM-dd", param))

		return f
	}

	f.add(param, table, field, operator, date)

	return f
}

// Presence filters on whether a nullable-like text column is filled.
func (f *Filters) Presence(param, table, field string) *Filters {
	flag := shared.ConvertStringToBool(f.get(param))
	if flag == nil {
		return f
	}

	operator := gDto.FilterOperatorEq
	if *flag {
		operator = gDto.FilterOperatorNotEq
	}

	f.add(param, table, field, operator, "")

	return f
}

func (f *Filters) fail(message string) {
	if f.err == nil {
		f.err = failure.BadRequestFromString(message)
	}
}

func (f *Filters) Build() (gDto.FilterGroup, error) {
	return f.group, f.err
}
