package salonservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetSalon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/salons/1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 1,
			"name": "Тестовый салон",
			"branches": [
				{
					"id": 10,
					"name": "Центральный",
					"weeklyHours": {
						"monday": {"enabled": true, "open": "09:00", "close": "18:00"},
						"sunday": {"enabled": false}
					}
				}
			],
			"places": [
				{"id": 100, "branchId": 10, "name": "Кресло 1", "capacity": 2}
			],
			"masters": [
				{"id": 500, "branchId": 10, "name": "Анна"},
				{"id": 501, "name": "Борис"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	salon, err := client.GetSalon(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), salon.ID)
	require.Len(t, salon.Branches, 1)
	require.NotNil(t, salon.Branches[0].Hours)
	assert.True(t, salon.Branches[0].Hours.Monday.Enabled)
	assert.Equal(t, "09:00", salon.Branches[0].Hours.Monday.Open)
	assert.False(t, salon.Branches[0].Hours.Sunday.Enabled)

	require.Len(t, salon.Places, 1)
	assert.Equal(t, 2, salon.Places[0].Capacity)

	require.Len(t, salon.Masters, 2)
	require.NotNil(t, salon.Masters[0].BranchID)
	assert.Equal(t, int64(10), *salon.Masters[0].BranchID)
	assert.Nil(t, salon.Masters[1].BranchID)
}

func TestGetSalon_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.GetSalon(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestGetSalon_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.GetSalon(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetSalon_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.GetSalon(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
