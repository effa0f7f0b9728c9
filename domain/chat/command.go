package chat

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateRoomCommand asks the session to open a new room and invite the
// given members. An empty invitee list fails validation; callers treat
// that as a silent no-op rather than an error.
type CreateRoomCommand struct {
	Invitees []string `validate:"min=1,dive,required"`
}

func (c CreateRoomCommand) Validate() error {
	return validate.Struct(c)
}
