package core

import (
	"context"
	"math/big"

	"accountbridge/internal/registry"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Registry . Registry
type Registry interface {
	Get(ctx context.Context, eoaAddress string, chainID uint64) (registry.Binding, error)
	Put(ctx context.Context, binding registry.Binding) error
	Update(ctx context.Context, eoaAddress string, chainID uint64, upd registry.BindingUpdate) (registry.Binding, error)
	ListByOwner(ctx context.Context, eoaAddress string) ([]registry.Binding, error)
	Delete(ctx context.Context, eoaAddress string, chainID uint64) error
}

//counterfeiter:generate -o fake -fake-name NodeService . NodeService
type NodeService interface {
	DeriveAccountAddress(ctx context.Context, owner common.Address, salt *big.Int) (common.Address, error)
	IsDeployed(ctx context.Context, account common.Address) (bool, error)
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, account common.Address) (*big.Int, error)
	HasSufficientGas(ctx context.Context, account common.Address, gasLimit uint64) (bool, error)
	AccountNonce(ctx context.Context, sender common.Address) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name GasFunder . GasFunder
type GasFunder interface {
	Fund(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
}
