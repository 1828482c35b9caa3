package ports

// Claims is the resolved identity carried by an access token.
type Claims struct {
	Subject string
	Email   string
	Role    string
}

// TokenService issues and verifies signed, time-bounded access tokens.
// Verify returns domain.ErrInvalidToken when the signature is invalid, the
// payload is malformed, or the token has expired.
type TokenService interface {
	Issue(claims Claims) (string, error)
	Verify(token string) (*Claims, error)
}
