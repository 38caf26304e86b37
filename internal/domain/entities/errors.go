package entities

import "errors"

// Domain errors
var (
	ErrSettingsCorrupted = errors.New("event settings are not valid JSON")
)
