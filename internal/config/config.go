// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the engine's chain/fork parameters from a TOML
// document, the same way go-ethereum's cmd/geth loads its node config:
// a typed struct decoded with naoina/toml, falling back to built-in
// defaults for anything the file omits.
package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"

	"github.com/ethgo/evmcore/params"
)

// tomlSettings mirrors go-ethereum's cmd/geth tomlSettings: field names
// pass through unchanged (TOML keys match the Go field names exactly),
// and an unrecognized key fails with a pointer at the offending type
// rather than silently being ignored.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(field[0])) && rt.Kind() == reflect.Struct {
			link = fmt.Sprintf(" (see the config.Document fields in %s)", rt.PkgPath())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// Document is the on-disk shape of the engine's configuration file.
type Document struct {
	ChainID  uint64
	MeterGas bool

	Homestead      bool
	EIP150         bool
	Byzantium      bool
	Constantinople bool
	Istanbul       bool
}

// ToChainConfig resolves d into a params.ChainConfig, defaulting to
// params.DefaultChainConfig's Istanbul/Berlin rule set when d declares
// none of the fork flags explicitly.
func (d Document) ToChainConfig() *params.ChainConfig {
	rules := params.Rules{
		IsHomestead:      d.Homestead,
		IsEIP150:         d.EIP150,
		IsByzantium:      d.Byzantium,
		IsConstantinople: d.Constantinople,
		IsIstanbul:       d.Istanbul,
	}
	if rules == (params.Rules{}) {
		rules = params.IstanbulBerlin
	}
	chainID := d.ChainID
	if chainID == 0 {
		chainID = 1
	}
	return &params.ChainConfig{
		ChainID:  chainID,
		Rules:    rules,
		MeterGas: d.MeterGas,
	}
}

// Load reads and decodes the TOML document at path.
func Load(path string) (*params.ChainConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a TOML document from r.
func Decode(r io.Reader) (*params.ChainConfig, error) {
	var doc Document
	if err := tomlSettings.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.ToChainConfig(), nil
}
