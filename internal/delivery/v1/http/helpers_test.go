package http

import (
	"net/http"
	"testing"

	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "integer", input: "600", want: 60000},
		{name: "two decimals", input: "599.99", want: 59999},
		{name: "one decimal", input: "10.5", want: 1050},
		{name: "zero", input: "0", want: 0},
		{name: "empty", input: "", wantErr: e.ErrInvalidPrice},
		{name: "spaces only", input: "   ", wantErr: e.ErrInvalidPrice},
		{name: "garbage", input: "abc", wantErr: e.ErrInvalidPrice},
		{name: "negative", input: "-1", wantErr: e.ErrInvalidPrice},
		{name: "three decimals", input: "9.999", wantErr: e.ErrPricePrecision},
		{name: "over limit", input: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "599.99", formatPrice(59999))
	assert.Equal(t, "600.00", formatPrice(60000))
	assert.Equal(t, "0.05", formatPrice(5))
	assert.Equal(t, "0.00", formatPrice(0))
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrTenantRequired, http.StatusBadRequest},
		{e.ErrEmptySearchQuery, http.StatusBadRequest},
		{e.ErrInvalidPrice, http.StatusBadRequest},
		{e.Wrap("CatalogUseCase.Search", e.ErrEmptySearchQuery), http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrTenantProductNotFound, http.StatusNotFound},
		{e.ErrTenantProductExists, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, "err: %v", tt.err)
	}
}
