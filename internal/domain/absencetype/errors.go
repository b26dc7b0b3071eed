package absencetype

import "errors"

var (
	ErrAbsenceTypeNotFound   = errors.New("absence type not found")
	ErrAbsenceTypeNameExists = errors.New("absence type name already exists in this company")
)
