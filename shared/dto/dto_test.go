package dto_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"tablebook/shared/constant"
	"tablebook/shared/dto"
	"tablebook/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), timeIn(t, metadata.CreatedAt).UTC().Format(constant.DateFormat))
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), timeIn(t, metadata.ModifiedAt).UTC().Format(constant.DateFormat))
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func timeIn(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.DateFormat, value)
	assert.NoError(t, err)

	return parsed
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:           "defaults",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid page and limit",
			query:          "page=-1&limit=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "unknown sort dir ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/restaurants?"+tt.query, nil)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "restaurant_id", Value: "r-1", Operator: dto.FilterOperatorEq, Table: "reservations"},
			dto.Filter{Field: "table_type", Value: []string{"twoSeater", "fourSeater"}, Operator: dto.FilterOperatorIn},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(reservations.restaurant_id = :restaurant_id AND table_type IN (:table_type_0, :table_type_1) )", where)
	assert.Equal(t, "r-1", args["restaurant_id"])
	assert.Equal(t, "twoSeater", args["table_type_0"])
	assert.Equal(t, "fourSeater", args["table_type_1"])
}

func TestCallerFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	caller := dto.CallerFromContext(ctx)
	assert.Equal(t, dto.Caller{UserID: "u-1", IsAdmin: true}, caller)
	assert.True(t, caller.Authenticated())

	anonymous := dto.CallerFromContext(context.Background())
	assert.False(t, anonymous.Authenticated())
	assert.False(t, anonymous.IsAdmin)
}
