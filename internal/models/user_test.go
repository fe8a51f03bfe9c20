package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdministrator.Valid())
	assert.True(t, RoleEditor.Valid())
	assert.False(t, Role("Superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusInactive.Valid())
	assert.False(t, Status("Suspended").Valid())
}

func TestUserJSONOmitsPassword(t *testing.T) {
	raw, err := json.Marshal(User{Name: "Eve", Password: "$2a$10$hash"})
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "password")
}
