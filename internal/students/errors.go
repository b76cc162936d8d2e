package students

import "errors"

var (
	ErrNotFound      = errors.New("student not found")
	ErrAlreadyExists = errors.New("student with this name already exists")
)
