package pgdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		columns  []string
		conds    []Cond
		orderBy  string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no conditions",
			table:   "categories",
			columns: []string{"id", "name"},
			wantSQL: "SELECT id, name FROM categories",
		},
		{
			name:     "single equality",
			table:    "products",
			columns:  []string{"id", "name"},
			conds:    []Cond{Eq("id", int64(5))},
			wantSQL:  "SELECT id, name FROM products WHERE id = $1",
			wantArgs: []any{int64(5)},
		},
		{
			name:    "conjunction with range",
			table:   "tenant_products",
			columns: []string{"id"},
			conds: []Cond{
				Eq("tenant_id", int64(7)),
				Eq("is_visible", true),
				Gte("price", int64(1000)),
				Lte("price", int64(5000)),
			},
			orderBy:  "id",
			wantSQL:  "SELECT id FROM tenant_products WHERE tenant_id = $1 AND is_visible = $2 AND price >= $3 AND price <= $4 ORDER BY id",
			wantArgs: []any{int64(7), true, int64(1000), int64(5000)},
		},
		{
			name:     "in becomes any",
			table:    "product_images",
			columns:  []string{"id", "image_url"},
			conds:    []Cond{In("product_id", []int64{1, 2, 3}), Eq("is_primary", true)},
			wantSQL:  "SELECT id, image_url FROM product_images WHERE product_id = ANY($1) AND is_primary = $2",
			wantArgs: []any{[]int64{1, 2, 3}, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildSelect(tt.table, tt.columns, tt.conds, tt.orderBy)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildDelete(t *testing.T) {
	sql, args := buildDelete("tenant_products", []Cond{Eq("tenant_id", int64(7)), Eq("product_id", int64(3))})
	require.Equal(t, "DELETE FROM tenant_products WHERE tenant_id = $1 AND product_id = $2", sql)
	require.Equal(t, []any{int64(7), int64(3)}, args)
}
