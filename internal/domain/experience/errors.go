package experience

import "errors"

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrDateNotFound       = errors.New("experience date not found")
)
