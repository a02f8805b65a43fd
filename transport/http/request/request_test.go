package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/model"
	"hotel/transport/http/request"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "positive id", value: "42", want: 42},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "missing", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/rooms/x", nil), "id", tt.value)

			got, err := request.PathID(r, "id")
			if tt.wantErr {
				require.ErrorIs(t, err, failure.InvalidIDParam)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilters_Build(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		build     func(f *request.Filters) *request.Filters
		wantWhere string
		wantArgs  map[string]any
		wantCode  int
	}{
		{
			name:   "binds each filter under its parameter name",
			target: "/orders?customer_name=ann&status=pending&room_id=4",
			build: func(f *request.Filters) *request.Filters {
				return f.Like("customer_name", "customers", "name").
					Eq("status", "orders", "status").
					ID("room_id", "orders", "room_id")
			},
			wantWhere: "(LOWER(customers.name) LIKE LOWER(:customer_name) AND orders.status = :status AND orders.room_id = :room_id)",
			wantArgs: map[string]any{
				"customer_name": "%ann%",
				"status":        "pending",
				"room_id":       int64(4),
			},
		},
		{
			name:   "absent parameters add nothing",
			target: "/orders",
			build: func(f *request.Filters) *request.Filters {
				return f.Eq("status", "orders", "status").ID("room_id", "orders", "room_id")
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:   "date range",
			target: "/orders?check_in_from=2025-03-01&check_in_to=2025-03-31",
			build: func(f *request.Filters) *request.Filters {
				return f.Date("check_in_from", "orders", "check_in_date", gDto.FilterOperatorGreaterEq).
					Date("check_in_to", "orders", "check_in_date", gDto.FilterOperatorLessEq)
			},
			wantWhere: "(orders.check_in_date >= :check_in_from AND orders.check_in_date <= :check_in_to)",
			wantArgs: map[string]any{
				"check_in_from": model.MustParseDate("2025-03-01"),
				"check_in_to":   model.MustParseDate("2025-03-31"),
			},
		},
		{
			name:   "presence true means filled",
			target: "/reviews?has_reply=true",
			build: func(f *request.Filters) *request.Filters {
				return f.Presence("has_reply", "reviews", "reply")
			},
			wantWhere: "(reviews.reply != :has_reply)",
			wantArgs:  map[string]any{"has_reply": ""},
		},
		{
			name:   "presence false means empty",
			target: "/reviews?has_reply=false",
			build: func(f *request.Filters) *request.Filters {
				return f.Presence("has_reply", "reviews", "reply")
			},
			wantWhere: "(reviews.reply = :has_reply)",
			wantArgs:  map[string]any{"has_reply": ""},
		},
		{
			name:   "malformed number",
			target: "/orders?room_id=four",
			build: func(f *request.Filters) *request.Filters {
				return f.ID("room_id", "orders", "room_id")
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "malformed date",
			target: "/orders?check_in_from=01-03-2025",
			build: func(f *request.Filters) *request.Filters {
				return f.Date("check_in_from", "orders", "check_in_date", gDto.FilterOperatorGreaterEq)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)

			group, err := tt.build(request.NewFilters(r)).Build()
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			where, args := group.GetWhereClause()
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
