// Copyright 2019 The go-ethereum Authors
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

package vm

// Enable1884 applies EIP-1884's repricing and adds SELFBALANCE to tbl,
// matching go-ethereum's eponymous function (originally misfiled under
// package params in the retrieved slice — see DESIGN.md).
func Enable1884(tbl *JumpTable) {
	tbl[BALANCE].constantGas = 700
	tbl[SLOAD].constantGas = 800
	tbl[SELFBALANCE] = operation{
		execute:     opSelfBalance,
		validate:    makeStackFunc(0, 1),
		constantGas: 5,
		valid:       true,
	}
}
