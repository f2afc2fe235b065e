package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAdmin/internal/service/catalog/models"
	"github.com/m04kA/SMC-StoreAdmin/pkg/ptr"
)

func TestBuildService_NormalizesDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "01:30", want: "01:30"},
		{raw: "1h 30m", want: "01:30"},
		{raw: "2h", want: "02:00"},
		{raw: "0:45", want: "00:45"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s, err := buildService(&models.ServiceRequest{Name: "Corte", Value: ptr.Ptr(30.0), Duration: tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Duration)
		})
	}
}

func TestBuildService_RejectsEmptyDuration(t *testing.T) {
	for _, raw := range []string{"", "garbage", "00:00"} {
		_, err := buildService(&models.ServiceRequest{Name: "Corte", Value: ptr.Ptr(30.0), Duration: raw})
		assert.ErrorIs(t, err, ErrInvalidDuration, raw)
	}
}

func TestResolveValue(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ServiceRequest
		want    float64
		wantErr bool
	}{
		{name: "number", req: models.ServiceRequest{Value: ptr.Ptr(29.9)}, want: 29.9},
		{name: "number rounded to cents", req: models.ServiceRequest{Value: ptr.Ptr(10.006)}, want: 10.01},
		{name: "cents", req: models.ServiceRequest{ValueCents: "2990"}, want: 29.9},
		{name: "masked cents", req: models.ServiceRequest{ValueCents: "R$ 1.234,56"}, want: 1234.56},
		{name: "zero cents", req: models.ServiceRequest{ValueCents: "000"}, want: 0},
		{name: "cents win over number", req: models.ServiceRequest{Value: ptr.Ptr(1.0), ValueCents: "500"}, want: 5},
		{name: "missing", req: models.ServiceRequest{}, wantErr: true},
		{name: "negative", req: models.ServiceRequest{Value: ptr.Ptr(-1.0)}, wantErr: true},
		{name: "too large", req: models.ServiceRequest{ValueCents: "10000000000"}, wantErr: true},
		{name: "letters only", req: models.ServiceRequest{ValueCents: "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveValue(&tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFromDomainService_Display(t *testing.T) {
	s, err := buildService(&models.ServiceRequest{Name: "Barba", ValueCents: "123456", Duration: "0h45"})
	require.NoError(t, err)

	resp := models.FromDomainService(s)

	assert.Equal(t, "123456", resp.ValueCents)
	assert.Equal(t, "R$ 1.234,56", resp.ValueDisplay)
	assert.Equal(t, "00:45", resp.Duration)
	assert.Equal(t, 45, resp.Minutes)
}
