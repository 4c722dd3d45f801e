package race

import "errors"

var (
	ErrUnknownLayout = errors.New("unknown layout")
	ErrUnknownAction = errors.New("unknown action")
)
