package config

import (
	"NumConv/constants"
)

// ConvCfgOpts holds the input limits of a converter
type ConvCfgOpts struct {
	MaxPhraseLength  int `yaml:"max-phrase-length"`
	MaxEncodedLength int `yaml:"max-encoded-length"`
}

func DefaultConvOpts() *ConvCfgOpts {
	return &ConvCfgOpts{
		MaxPhraseLength:  constants.DefaultMaxPhraseLength,
		MaxEncodedLength: constants.DefaultMaxEncodedLength,
	}
}
