// Copyright 2015 The go-ethereum Authors
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

package params

// The step-cost constants below are the ones go-ethereum's jump table
// keys every simple opcode's constantGas off of. They only matter when
// ChainConfig.MeterGas is set; the unmetered default engine never reads
// them.
const (
	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
	GasFastStep    uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10
	GasExtStep     uint64 = 20

	GasSha3         uint64 = 30
	GasSha3Word     uint64 = 6
	GasCopy         uint64 = 3
	GasMemoryWord   uint64 = 3
	GasLog          uint64 = 375
	GasLogData      uint64 = 8
	GasLogTopic     uint64 = 375
	GasCreate       uint64 = 32000
	GasCreateData   uint64 = 200
	GasCallBase     uint64 = 700
	GasCallValue    uint64 = 9000
	GasCallStipend  uint64 = 2300
	GasCallNewAccount uint64 = 25000
	GasSelfdestruct uint64 = 5000
	GasSelfdestructNewAccount uint64 = 25000

	// JumpdestGas is what upstream go-ethereum names this one (not
	// JumpdestStep), since jump_table.go itself refers to it as
	// params.JumpdestGas.
	JumpdestGas uint64 = 1

	// SSTORE pricing, pre-Istanbul net-gas-metering: set (zero->nonzero),
	// reset (nonzero->other) and the refund for clearing a slot back to
	// zero.
	SstoreSetGas    uint64 = 20000
	SstoreResetGas  uint64 = 5000
	SstoreClearRefund uint64 = 15000

	TxGas            uint64 = 21000
	TxGasContractCreation uint64 = 53000
	TxDataZeroGas    uint64 = 4
	TxDataNonZeroGas uint64 = 16
)
