package errors

import "fmt"

var (
	ErrRoomNotFound   = fmt.Errorf("room record not found")
	ErrInvalidAddress = fmt.Errorf("address must look like node@domain")
)
