// Package utils provides small helpers shared across the HTTP layer.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaffToken is a signed advisory identity token together with its expiry.
// It names a staff member and role so handlers can stamp the waiter on
// kitchen orders; it grants no privileges and no endpoint requires one.
type StaffToken struct {
	Token string
	Exp   time.Time
}

// NewStaffToken builds and signs an HS256 JWT carrying the staff member's
// name and role under the "staff" and "role" claims the identity middleware
// reads back, plus exp and iat.
func NewStaffToken(secret, name, role string, ttlMin int) (StaffToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"staff": name,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return StaffToken{}, err
	}
	return StaffToken{Token: signed, Exp: exp}, nil
}
