package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

var errUnexpectedCallResult = errors.New("unexpected contract call result")

// NodeService answers all read-only chain questions: counterfactual address
// derivation, deployment checks and balance reads.
type NodeService struct {
	client EthClient
	cfg    NodeConfig
}

func NewNodeService(ethClient EthClient, cfg NodeConfig) *NodeService {
	return &NodeService{
		client: ethClient,
		cfg:    cfg,
	}
}

// DeriveAccountAddress asks the account factory for the counterfactual smart
// account address of the given owner. The factory derivation is deterministic,
// so repeated calls with the same owner and salt return the same address. An
// RPC failure is a hard error; the service never guesses an address.
func (s *NodeService) DeriveAccountAddress(ctx context.Context, owner common.Address, salt *big.Int) (common.Address, error) {
	data, err := factoryABI.Pack("getAddress", owner, salt)
	if err != nil {
		return common.Address{}, fmt.Errorf("pack getAddress: %w", err)
	}

	out, err := s.client.CallContract(ctx, goeth.CallMsg{To: &s.cfg.FactoryAddress, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("factory getAddress call: %w", err)
	}

	results, err := factoryABI.Unpack("getAddress", out)
	if err != nil {
		return common.Address{}, fmt.Errorf("unpack getAddress result: %w", err)
	}
	if len(results) != 1 {
		return common.Address{}, errUnexpectedCallResult
	}
	addr, ok := results[0].(common.Address)
	if !ok {
		return common.Address{}, errUnexpectedCallResult
	}

	return addr, nil
}

// IsDeployed reports whether bytecode exists at the given address.
func (s *NodeService) IsDeployed(ctx context.Context, account common.Address) (bool, error) {
	code, err := s.client.CodeAt(ctx, account, nil)
	if err != nil {
		return false, fmt.Errorf("get code: %w", err)
	}
	return len(code) > 0, nil
}

// NativeBalance returns the native currency balance of an address in wei.
func (s *NodeService) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// TokenBalance returns the configured ERC-20 token balance of an address.
func (s *NodeService) TokenBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	data, err := erc20ABI.Pack("balanceOf", account)
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf: %w", err)
	}

	out, err := s.client.CallContract(ctx, goeth.CallMsg{To: &s.cfg.TokenAddress, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("token balanceOf call: %w", err)
	}

	results, err := erc20ABI.Unpack("balanceOf", out)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf result: %w", err)
	}
	if len(results) != 1 {
		return nil, errUnexpectedCallResult
	}
	balance, ok := results[0].(*big.Int)
	if !ok {
		return nil, errUnexpectedCallResult
	}

	return balance, nil
}

// HasSufficientGas reports whether the address holds enough native balance to
// cover gasLimit at the current suggested gas price. The estimate is a hint,
// not a guarantee: gas price can move between the check and execution.
func (s *NodeService) HasSufficientGas(ctx context.Context, account common.Address, gasLimit uint64) (bool, error) {
	balance, err := s.NativeBalance(ctx, account)
	if err != nil {
		return false, err
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return false, fmt.Errorf("suggest gas price: %w", err)
	}

	required := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(gasLimit))
	return balance.Cmp(required) >= 0, nil
}

// AccountNonce reads the smart account's current nonce from the entry point
// contract (key 0 of the 4337 two-dimensional nonce space).
func (s *NodeService) AccountNonce(ctx context.Context, sender common.Address) (*big.Int, error) {
	data, err := entryPointABI.Pack("getNonce", sender, big.NewInt(0))
	if err != nil {
		return nil, fmt.Errorf("pack getNonce: %w", err)
	}

	out, err := s.client.CallContract(ctx, goeth.CallMsg{To: &s.cfg.EntryPointAddress, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("entry point getNonce call: %w", err)
	}

	results, err := entryPointABI.Unpack("getNonce", out)
	if err != nil {
		return nil, fmt.Errorf("unpack getNonce result: %w", err)
	}
	if len(results) != 1 {
		return nil, errUnexpectedCallResult
	}
	nonce, ok := results[0].(*big.Int)
	if !ok {
		return nil, errUnexpectedCallResult
	}

	return nonce, nil
}
