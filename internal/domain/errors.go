package domain

import "errors"

var (
	ErrNotFound    = errors.New("employee not found")
	ErrDuplicateID = errors.New("employee ID already exists")
	ErrInvalidCSV  = errors.New("invalid roster CSV")
)
