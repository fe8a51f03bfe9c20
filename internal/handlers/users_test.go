package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdmitr/portfolio-cms/internal/models"
	"github.com/rdmitr/portfolio-cms/internal/services"
)

func newUsersApp(mem *memCollection[models.User]) *fiber.App {
	app := fiber.New()
	users := NewUsers(mem)
	app.Get("/users", users.List)
	app.Post("/users", users.Create)
	app.Put("/users/:id", users.Update)
	app.Delete("/users/:id", users.Delete)
	return app
}

func TestCreateUserRequiresAllFields(t *testing.T) {
	app := newUsersApp(newMemCollection[models.User]("email"))

	body, _ := json.Marshal(fiber.Map{"name": "Eve", "email": "eve@example.com"})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	mem := newMemCollection[models.User]("email")
	app := newUsersApp(mem)

	payload := fiber.Map{
		"name": "Eve", "email": "eve@example.com", "password": "secret",
		"role": "Editor", "status": "Active",
	}
	for i, wantStatus := range []int{fiber.StatusCreated, fiber.StatusBadRequest} {
		if i == 1 {
			// Same address, different case: uniqueness is case-insensitive.
			payload["email"] = "EVE@example.com"
		}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, wantStatus, resp.StatusCode)
	}
}

func TestCreateUserNeverReturnsHash(t *testing.T) {
	app := newUsersApp(newMemCollection[models.User]("email"))

	body, _ := json.Marshal(fiber.Map{
		"name": "Eve", "email": "eve@example.com", "password": "secret",
		"role": "Administrator", "status": "Active",
	})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw := map[string]any{}
	decodeBody(t, resp.Body, &raw)
	assert.NotContains(t, raw, "password")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	app := newUsersApp(newMemCollection[models.User]("email"))

	body, _ := json.Marshal(fiber.Map{
		"name": "Eve", "email": "eve@example.com", "password": "secret",
		"role": "Superuser", "status": "Active",
	})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateUserRejectsNonStringRole(t *testing.T) {
	mem := newMemCollection[models.User]("email")
	app := newUsersApp(mem)

	user, err := mem.Create(context.Background(), models.User{
		Name: "Eve", Email: "eve@example.com", Password: "hash",
		Role: models.RoleEditor, Status: models.StatusActive,
	})
	require.NoError(t, err)

	// Numeric and other non-string values must be rejected, not stored.
	for _, payload := range []fiber.Map{
		{"role": 5},
		{"status": true},
		{"role": "Superuser"},
	} {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("PUT", "/users/"+user.ID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}

	stored := mem.stored(user.ID.Hex())
	assert.Equal(t, string(models.RoleEditor), stored["role"])
	assert.Equal(t, string(models.StatusActive), stored["status"])
}

func TestUpdateUserPasswordHandling(t *testing.T) {
	mem := newMemCollection[models.User]("email")
	app := newUsersApp(mem)

	hash, err := services.HashPassword("original")
	require.NoError(t, err)
	user, err := mem.Create(context.Background(), models.User{
		Name: "Eve", Email: "eve@example.com", Password: hash,
		Role: models.RoleEditor, Status: models.StatusActive,
	})
	require.NoError(t, err)

	update := func(payload fiber.Map) {
		t.Helper()
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("PUT", "/users/"+user.ID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// Empty password field: stored hash must stay untouched.
	update(fiber.Map{"name": "Eve Updated", "password": ""})
	stored := mem.stored(user.ID.Hex())
	assert.Equal(t, hash, stored["password"])
	assert.Equal(t, "Eve Updated", stored["name"])

	// Non-empty password: hash changes and the old password stops working.
	update(fiber.Map{"password": "replacement"})
	stored = mem.stored(user.ID.Hex())
	newHash, _ := stored["password"].(string)
	assert.NotEqual(t, hash, newHash)
	assert.False(t, services.VerifyPassword("original", newHash))
	assert.True(t, services.VerifyPassword("replacement", newHash))
}
