package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
)

// NodeConfig holds the contract addresses the node service reads from.
type NodeConfig struct {
	FactoryAddress    common.Address
	TokenAddress      common.Address
	EntryPointAddress common.Address
}
