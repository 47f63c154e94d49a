package core

import (
	"math/big"

	"accountbridge/internal/registry"

	"github.com/ethereum/go-ethereum/common"
)

type CreateAccountMessage struct {
	EOAAddress string
	ChainID    uint64
	UserAgent  string
	WalletName string
}

type AccountResult struct {
	Binding       registry.Binding
	Wallet        WalletType
	AlreadyExists bool
}

type WithdrawMessage struct {
	EOAAddress  string
	ChainID     uint64
	Amount      string
	WithdrawAll bool
}

// ConversionStatus is a balance snapshot used to decide whether a token move
// from the EOA into the smart account needs gas funding first.
type ConversionStatus struct {
	HasGas                    bool
	HasToken                  bool
	EOATokenBalance           *big.Int
	SmartAccountTokenBalance  *big.Int
	SmartAccountNativeBalance *big.Int
	NeedsGasFunding           bool
}

// WithdrawalStatus mirrors ConversionStatus for the reverse direction.
type WithdrawalStatus struct {
	HasGas                   bool
	HasToken                 bool
	SmartAccountTokenBalance *big.Int
	CanWithdraw              bool
}

// PreparedTransfer is an unsigned plain token transfer for the EOA owner to
// sign client side. The service never submits it.
type PreparedTransfer struct {
	From     common.Address
	To       common.Address
	Value    *big.Int
	Data     []byte
	GasLimit uint64
	ChainID  uint64
}

type ConversionPlan struct {
	GasFunded     bool
	FundingTxHash common.Hash
	Amount        *big.Int
	Transfer      PreparedTransfer
}

// UserOperation is the ERC-4337 structure describing the smart-account action
// the user signs and submits to a bundler. Signature is left empty for client
// side signing.
type UserOperation struct {
	Sender               common.Address
	Nonce                *big.Int
	InitCode             []byte
	CallData             []byte
	CallGasLimit         *big.Int
	VerificationGasLimit *big.Int
	PreVerificationGas   *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	PaymasterAndData     []byte
	Signature            []byte
}

type WithdrawalPlan struct {
	Amount        *big.Int
	UserOperation UserOperation
}
