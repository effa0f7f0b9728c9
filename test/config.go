package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Identity    string `envconfig:"SCENARIO_IDENTITY" default:"hero@chat.example.org/tower"`
	CharacterID string `envconfig:"SCENARIO_CHARACTER_ID" default:"char-900"`
	MucDomain   string `envconfig:"SCENARIO_MUC_DOMAIN" default:"muc.example.org"`
	PartyNode   string `envconfig:"SCENARIO_PARTY_NODE" default:"fellowship@muc.example.org"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
