package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID_SubjectClaim(t *testing.T) {
	claims := Claims{"sub": "u1"}

	assert.Equal(t, "u1", UserID(claims))
}

func TestUserID_NameIdentifierWinsOverSub(t *testing.T) {
	claims := Claims{
		claimNameIdentifier: "u-nameid",
		"sub":               "u-sub",
	}

	assert.Equal(t, "u-nameid", UserID(claims))
}

func TestUserID_UserIdFallback(t *testing.T) {
	claims := Claims{"userId": "u42"}

	assert.Equal(t, "u42", UserID(claims))
}

func TestUserID_EmptyWhenAbsent(t *testing.T) {
	assert.Equal(t, "", UserID(Claims{}))
	assert.Equal(t, "", UserID(Claims{"sub": 123}))
}

func TestIsAdminByRoleClaim_StringValue(t *testing.T) {
	assert.True(t, IsAdminByRoleClaim(Claims{"role": "admin"}))
	assert.True(t, IsAdminByRoleClaim(Claims{"role": "Admin"}))
	assert.True(t, IsAdminByRoleClaim(Claims{claimRoleURI: "ADMIN"}))
	assert.False(t, IsAdminByRoleClaim(Claims{"role": "user"}))
	assert.False(t, IsAdminByRoleClaim(Claims{"role": "administrator"}))
}

func TestIsAdminByRoleClaim_ListValue(t *testing.T) {
	assert.True(t, IsAdminByRoleClaim(Claims{"roles": []any{"user", "admin"}}))
	assert.False(t, IsAdminByRoleClaim(Claims{"roles": []any{"user"}}))
}

func TestIsAdminByEmailHeuristic(t *testing.T) {
	assert.True(t, IsAdminByEmailHeuristic(Claims{"email": "admin@campus.edu"}))
	assert.True(t, IsAdminByEmailHeuristic(Claims{"email": "the.Admin@campus.edu"}))
	assert.True(t, IsAdminByEmailHeuristic(Claims{claimEmailURI: "admin@campus.edu"}))
	assert.False(t, IsAdminByEmailHeuristic(Claims{"email": "alice@campus.edu"}))
	assert.False(t, IsAdminByEmailHeuristic(Claims{}))
}

func TestIsAdminByNameHeuristic(t *testing.T) {
	assert.True(t, IsAdminByNameHeuristic(Claims{"name": "Site Administrator"}))
	assert.True(t, IsAdminByNameHeuristic(Claims{claimNameURI: "admin"}))
	assert.False(t, IsAdminByNameHeuristic(Claims{"name": "Alice"}))
}

func TestIsAdmin_AnyPathGrants(t *testing.T) {
	assert.True(t, IsAdmin(Claims{"role": "admin"}))
	assert.True(t, IsAdmin(Claims{"email": "admin@campus.edu"}))
	assert.True(t, IsAdmin(Claims{"name": "admin"}))
	assert.False(t, IsAdmin(Claims{
		"sub":   "u1",
		"role":  "student",
		"email": "alice@campus.edu",
		"name":  "Alice",
	}))
}
