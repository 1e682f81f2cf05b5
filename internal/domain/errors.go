package domain

import "errors"

var (
	ErrNoCookies      = errors.New("no cookies found for domain")
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidFeed    = errors.New("invalid feed response")
)
