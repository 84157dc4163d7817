// Package jwt provides token issuance and verification for the Waypost API.
//
// Tokens are HS256-signed with a shared secret from configuration. Claims
// carry the user id as the subject plus the user's email. Validation checks
// signature, expiry and issuer, and reports failures through two sentinel
// errors:
//
//   - ErrTokenExpired: the token was valid but has expired
//   - ErrInvalidToken: anything else (bad signature, malformed, wrong issuer)
package jwt
