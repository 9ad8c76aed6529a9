package renterservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetRenter(t *testing.T) {
	renterID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/renters/"+renterID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + renterID.String() + `","name":"Ana","license_type":"AB","is_active":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})
	renter, err := client.GetRenter(context.Background(), renterID)

	require.NoError(t, err)
	assert.Equal(t, renterID, renter.ID)
	assert.Equal(t, "AB", renter.LicenseType)
	assert.True(t, renter.CanRent())
}

func TestGetRenter_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second, nopLogger{}).GetRenter(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrRenterNotFound)
}

func TestGetRenter_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second, nopLogger{}).GetRenter(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetRenter_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, time.Second, nopLogger{}).GetRenter(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestRenter_CanRent(t *testing.T) {
	tests := []struct {
		license string
		active  bool
		want    bool
	}{
		{LicenseA, true, true},
		{LicenseAB, true, true},
		{LicenseB, true, false},
		{"", true, false},
		{LicenseA, false, false},
	}

	for _, tt := range tests {
		r := Renter{LicenseType: tt.license, IsActive: tt.active}
		assert.Equal(t, tt.want, r.CanRent(), "license=%q active=%v", tt.license, tt.active)
	}
}
