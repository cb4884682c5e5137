package services

import (
	"errors"
	"fmt"
)

var (
	ErrExternalCall = fmt.Errorf("openai call failed")
	ErrParse        = fmt.Errorf("unparseable openai reply")
)

// ErrorKind names the failure class of err for logging: "external", "parse" or "internal".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrExternalCall):
		return "external"
	default:
		return "internal"
	}
}
