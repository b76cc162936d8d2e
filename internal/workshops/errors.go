package workshops

import "errors"

var (
	ErrNotFound      = errors.New("workshop not found")
	ErrAlreadyExists = errors.New("workshop with this subject already exists")
)
