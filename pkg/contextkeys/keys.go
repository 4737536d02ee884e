package contextkeys

type contextKey string

const (
	ClaimsKey contextKey = "AuthClaims"
)
