package instructors

import "errors"

var (
	ErrNotFound      = errors.New("instructor not found")
	ErrAlreadyExists = errors.New("instructor with this name already exists")
)
