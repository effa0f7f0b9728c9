package internal

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config carries the session settings shared by the binaries.
type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	// Identity is the current user's own transport address.
	Identity string `env:"IDENTITY,required=true" validate:"contains=@"`
	// CharacterID scopes the persisted room records.
	CharacterID string `env:"CHARACTER_ID,required=true"`
	// MucDomain is the group chat domain appended to new room names.
	MucDomain string `env:"MUC_DOMAIN,required=true" validate:"hostname_rfc1123"`
	PartyNode string `env:"PARTY_NODE,default=party.example.org"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}
