package employeetype

import "errors"

var (
	ErrEmployeeTypeNotFound   = errors.New("employee type not found")
	ErrEmployeeTypeNameExists = errors.New("employee type name already exists in this company")
)
