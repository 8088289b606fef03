// Package credential parses and mints the pseudo-credential carried in the
// Authorization header. The payload is "<subjectId>_<role>"; nothing is
// signed or verified, this is a label extractor, not an authenticator.
package credential

import (
	"errors"
	"strings"
)

const bearerPrefix = "Bearer "

// RoleAdmin is the only role with behavioral effect: it gates deletion.
const RoleAdmin = "Admin"

// ErrMalformed reports a missing prefix or a payload that does not split
// into exactly two non-empty parts.
var ErrMalformed = errors.New("missing or malformed bearer token")

// Credential is the parsed form of the bearer token. It is derived at the
// request boundary and passed by value through the call chain; it is never
// persisted on a task.
type Credential struct {
	Subject string
	Role    string
	// Token is the raw payload, kept for reuse on outbound calls.
	Token string
}

// Parse extracts the credential from a full Authorization header value.
func Parse(headerValue string) (Credential, error) {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return Credential{}, ErrMalformed
	}
	return ParseToken(strings.TrimSpace(headerValue[len(bearerPrefix):]))
}

// ParseToken extracts the credential from the bare token payload.
func ParseToken(token string) (Credential, error) {
	parts := strings.Split(token, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Credential{}, ErrMalformed
	}
	return Credential{Subject: parts[0], Role: parts[1], Token: token}, nil
}

// Mint builds the token payload issued at login.
func Mint(subject, role string) string {
	return subject + "_" + role
}

// IsAdmin reports whether the credential carries the Admin role.
func (c Credential) IsAdmin() bool {
	return c.Role == RoleAdmin
}
