package dto_test

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestMetadata_FromModel(t *testing.T) {
	modelMetadata := model.Metadata{
		CreatedAt:  1709251200,
		ModifiedAt: 1709337600,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt != modelMetadata.CreatedAt {
		t.Errorf("expected CreatedAt to be %d, got %d", modelMetadata.CreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != modelMetadata.ModifiedAt {
		t.Errorf("expected ModifiedAt to be %d, got %d", modelMetadata.ModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "email",
				SortDir: "", // Empty when not provided
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a URL with query parameters
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			// Add query parameters
			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			// Create HTTP request
			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			// Test the method
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			// Verify results
			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestQueryParams_Sortable(t *testing.T) {
	columns := map[string]string{
		"name":       "hotels.name",
		"created_at": "hotels.created_at",
	}

	tests := []struct {
		name        string
		params      dto.QueryParams
		wantSortBy  string
		wantSortDir string
	}{
		{
			name:        "known key is mapped to its column",
			params:      dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
			wantSortBy:  "hotels.name",
			wantSortDir: dto.SortDirAsc,
		},
		{
			name:        "unknown key falls back",
			params:      dto.QueryParams{SortBy: "name; DROP TABLE hotels"},
			wantSortBy:  "hotels.created_at",
			wantSortDir: constant.DefaultValueSortDir,
		},
		{
			name:        "empty key falls back",
			params:      dto.QueryParams{},
			wantSortBy:  "hotels.created_at",
			wantSortDir: constant.DefaultValueSortDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Sortable(columns, "hotels.created_at")

			if tt.params.SortBy != tt.wantSortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.wantSortBy, tt.params.SortBy)
			}

			if tt.params.SortDir != tt.wantSortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.wantSortDir, tt.params.SortDir)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "conjunction of eq and like",
			group: dto.And(
				dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq, Table: "rooms"},
				dto.Filter{Field: "name", Value: "grand", Operator: dto.FilterOperatorLike, Table: "hotels"},
			),
			wantWhere: "(rooms.status = :status AND LOWER(hotels.name) LIKE LOWER(:name))",
			wantArgs:  map[string]any{"status": "available", "name": "%grand%"},
		},
		{
			name: "in with slice expands named args",
			group: dto.And(
				dto.Filter{Field: "room_id", Value: []int64{7, 8}, Operator: dto.FilterOperatorIn},
			),
			wantWhere: "(room_id IN (:room_id_0, :room_id_1))",
			wantArgs:  map[string]any{"room_id_0": int64(7), "room_id_1": int64(8)},
		},
		{
			name: "in with empty slice matches nothing",
			group: dto.And(
				dto.Filter{Field: "room_id", Value: []int64{}, Operator: dto.FilterOperatorIn},
			),
			wantWhere: "(FALSE)",
			wantArgs:  map[string]any{},
		},
		{
			name: "half-open comparison with arg names",
			group: dto.And(
				dto.Filter{ArgName: "check_out", Field: "check_in_date", Value: "2024-03-03", Operator: dto.FilterOperatorLess},
				dto.Filter{ArgName: "check_in", Field: "check_out_date", Value: "2024-03-01", Operator: dto.FilterOperatorGreater},
			),
			wantWhere: "(check_in_date < :check_out AND check_out_date > :check_in)",
			wantArgs:  map[string]any{"check_out": "2024-03-03", "check_in": "2024-03-01"},
		},
		{
			name: "unknown operators are skipped",
			group: dto.And(
				dto.Filter{Field: "id", Value: 1, Operator: "between"},
				dto.Filter{Field: "id", Value: 1, Operator: dto.FilterOperatorEq},
			),
			wantWhere: "(id = :id)",
			wantArgs:  map[string]any{"id": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			if strings.TrimSpace(where) != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, value := range tt.wantArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}
