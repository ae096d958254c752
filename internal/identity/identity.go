package identity

import "strings"

// Claims is a verified claim set produced by the auth middleware. Resolution
// below is a pure function of this map; there is no ambient principal.
type Claims map[string]any

// ClaimsContextKey is where the auth middleware stores the verified claims
// on the request context.
const ClaimsContextKey = "claims"

const (
	claimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimRoleURI        = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	claimEmailURI       = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimNameURI        = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
)

var roleClaimKeys = []string{"role", "roles", claimRoleURI}

// UserID resolves the caller's identifier, trying the standard subject
// claims in order. It never fails; an unresolvable principal yields "".
func UserID(claims Claims) string {
	for _, key := range []string{claimNameIdentifier, "sub", "userId"} {
		if v := stringClaim(claims, key); v != "" {
			return v
		}
	}
	return ""
}

// IsAdmin reports whether the principal should be treated as an
// administrator. The email/name substring fallbacks mirror the role check's
// original behavior; they are heuristics, kept separate so each path stays
// independently testable.
func IsAdmin(claims Claims) bool {
	return IsAdminByRoleClaim(claims) ||
		IsAdminByEmailHeuristic(claims) ||
		IsAdminByNameHeuristic(claims)
}

// IsAdminByRoleClaim matches a role claim equal to "admin" (case-insensitive)
// under any of the recognized role claim keys. The claim value may be a
// single string or a list of roles.
func IsAdminByRoleClaim(claims Claims) bool {
	for _, key := range roleClaimKeys {
		switch v := claims[key].(type) {
		case string:
			if strings.EqualFold(v, "admin") {
				return true
			}
		case []any:
			for _, role := range v {
				if s, ok := role.(string); ok && strings.EqualFold(s, "admin") {
					return true
				}
			}
		}
	}
	return false
}

// IsAdminByEmailHeuristic matches "admin" as a substring of the email claim.
func IsAdminByEmailHeuristic(claims Claims) bool {
	email := stringClaim(claims, "email")
	if email == "" {
		email = stringClaim(claims, claimEmailURI)
	}
	return strings.Contains(strings.ToLower(email), "admin")
}

// IsAdminByNameHeuristic matches "admin" as a substring of the display name.
func IsAdminByNameHeuristic(claims Claims) bool {
	name := stringClaim(claims, "name")
	if name == "" {
		name = stringClaim(claims, claimNameURI)
	}
	return strings.Contains(strings.ToLower(name), "admin")
}

func stringClaim(claims Claims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
