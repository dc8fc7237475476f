package rate

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrCalculationInputInvalid = errors.New("calculation input invalid")
	ErrRoomNotFound            = errors.New("room not found")
	ErrRoomNumberTaken         = errors.New("room number already in use")
)
