package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateRoomCommand_Validate(t *testing.T) {
	req := require.New(t)

	req.Error(CreateRoomCommand{}.Validate())
	req.Error(CreateRoomCommand{Invitees: []string{}}.Validate())
	req.Error(CreateRoomCommand{Invitees: []string{""}}.Validate())

	req.NoError(CreateRoomCommand{Invitees: []string{"alice@chat.example.org"}}.Validate())
}
