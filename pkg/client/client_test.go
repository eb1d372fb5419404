package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdash/user-dashboard/internal/core/domain"
)

func TestUpdateUser_SendsOnlyProvidedFields(t *testing.T) {
	var body map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &body))
		_, _ = w.Write([]byte(`{"id":7,"firstName":"Janet"}`))
	}))
	defer srv.Close()

	firstName := "Janet"
	inactive := false
	user, err := New(srv.URL).UpdateUser(context.Background(), 7, domain.UserUpdate{
		FirstName: &firstName,
		IsActive:  &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", user.FirstName)

	// Exactly the two provided fields, nothing nulled.
	assert.Len(t, body, 2)
	assert.Contains(t, body, "firstName")
	assert.Contains(t, body, "isActive")
	assert.JSONEq(t, `false`, string(body["isActive"]))
}

func TestCreateUser_MiddleNameAlwaysOnTheWire(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"email":"a@b.se"}`))
	}))
	defer srv.Close()

	user, err := New(srv.URL).CreateUser(context.Background(), domain.UserFormData{
		Email:       "a@b.se",
		FirstName:   "Ana",
		LastName:    "Berg",
		DateOfBirth: "1990-01-01",
		RoleID:      1,
		IsActive:    true,
		Country:     "Sweden",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)

	middle, ok := body["middleName"]
	require.True(t, ok, "middleName must be present even when unset")
	assert.Equal(t, "", middle)
}

func TestGetAllUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"firstName":"Ana"},{"id":2,"firstName":"Bo"}]`))
	}))
	defer srv.Close()

	users, err := New(srv.URL).GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bo", users[1].FirstName)
}

func TestDeleteUser_PropagatesNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"User not found"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteUser(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}

func TestGeneratePDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pdf/current", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "http://localhost:3000/user/42", req["url"])
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	pdf, err := New(srv.URL).GeneratePDF(context.Background(), "http://localhost:3000/user/42")
	require.NoError(t, err)
	assert.Equal(t, "user-42.pdf", pdf.Filename)
	assert.Equal(t, []byte("%PDF-1.7 fake"), pdf.Data)
}
