package config

import "errors"

var (
	ErrNilPointer = errors.New("config.nil_pointer")
	ErrParse      = errors.New("config.parse_failed")
)
