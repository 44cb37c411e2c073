package game

import "errors"

var (
	ErrEmptyPool     = errors.New("word pool is empty")
	ErrPoolExhausted = errors.New("every word in the pool is excluded")
	ErrCannotStart   = errors.New("word pool too small to start a round")
)
