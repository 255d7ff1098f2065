package auth

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrStoreForbidden = errors.New("token does not grant access to this store")
)
