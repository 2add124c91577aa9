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

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethgo/evmcore/params"
)

func TestDecodeDefaultsToIstanbulBerlin(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`ChainID = 5`))
	require.NoError(t, err)
	require.Equal(t, uint64(5), cfg.ChainID)
	require.Equal(t, params.IstanbulBerlin, cfg.Rules)
}

func TestDecodeExplicitRules(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
ChainID = 1
MeterGas = true
Homestead = true
EIP150 = true
`))
	require.NoError(t, err)
	require.True(t, cfg.MeterGas)
	require.True(t, cfg.Rules.IsHomestead)
	require.True(t, cfg.Rules.IsEIP150)
	require.False(t, cfg.Rules.IsByzantium)
}

func TestDecodeRejectsUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`Bogus = true`))
	require.Error(t, err)
}
