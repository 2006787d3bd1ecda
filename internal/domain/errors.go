package domain

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownLocation = errors.New("unknown location")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrRunNotFound     = errors.New("simulation run not found")
	ErrCacheMiss       = errors.New("cache miss")
)
