package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"accountbridge/internal/ethereum"
	"accountbridge/internal/registry"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"go.uber.org/zap"
)

var ErrUnsupportedChain error = errors.New("unsupported chain id")
var ErrInvalidAddress error = errors.New("invalid account address")
var ErrNoConvertBalance error = errors.New("no USDC balance in EOA wallet to convert")
var ErrNoWithdrawBalance error = errors.New("no USDC balance in smart account to withdraw")
var ErrAmountExceedsBalance error = errors.New("amount exceeds available USDC balance")
var ErrInsufficientGas error = errors.New("smart account has insufficient ETH for gas fees")
var ErrAmountRequired error = errors.New("amount is required when withdrawAll is false")

// UserOperation gas parameters for a withdrawal. The call gas limit comes from
// Config.TransferGasLimit.
var (
	withdrawVerificationGasLimit = big.NewInt(100_000)
	withdrawPreVerificationGas   = big.NewInt(21_000)
	withdrawMaxFeePerGas         = big.NewInt(5 * params.GWei)
	withdrawMaxPriorityFeePerGas = big.NewInt(2 * params.GWei)
)

// Config carries the chain parameters the orchestrators operate with.
type Config struct {
	ChainID          uint64
	TokenAddress     common.Address
	TokenDecimals    int
	TransferGasLimit uint64
	FundingAmount    *big.Int
	// Extra wait after a funding transaction is mined, before the prepared
	// transfer is handed back, so balance reads downstream observe it.
	SettleDelay time.Duration
}

// Bridge orchestrates smart-account linking, EOA-to-smart-account conversion
// and smart-account-to-EOA withdrawal. It only prepares transactions; all
// signing happens client side, except gas funding from the custodial key.
type Bridge struct {
	logs     *zap.SugaredLogger
	registry Registry
	node     NodeService
	funder   GasFunder
	cfg      Config
}

func NewBridge(logger *zap.SugaredLogger, accountRegistry Registry, nodeService NodeService, gasFunder GasFunder, cfg Config) *Bridge {
	return &Bridge{
		logs:     logger,
		registry: accountRegistry,
		node:     nodeService,
		funder:   gasFunder,
		cfg:      cfg,
	}
}

// CreateAccount resolves (or creates) the binding for the EOA and classifies
// the connecting wallet. AlreadyExists reports whether the binding predates
// this call.
func (b *Bridge) CreateAccount(ctx context.Context, msg CreateAccountMessage) (AccountResult, error) {
	wallet := DetectWalletType(msg.UserAgent, msg.WalletName)

	binding, created, err := b.resolveBinding(ctx, msg.EOAAddress, msg.ChainID)
	if err != nil {
		return AccountResult{}, err
	}

	return AccountResult{
		Binding:       binding,
		Wallet:        wallet,
		AlreadyExists: !created,
	}, nil
}

// FetchOrCreateAccount returns the binding for the EOA, creating it on first
// sight. Created reports whether this call created it.
func (b *Bridge) FetchOrCreateAccount(ctx context.Context, eoaAddress string, chainID uint64) (registry.Binding, bool, error) {
	return b.resolveBinding(ctx, eoaAddress, chainID)
}

// ConversionStatus reports the balances relevant to moving tokens from the
// EOA into its smart account.
func (b *Bridge) ConversionStatus(ctx context.Context, eoaAddress string, chainID uint64) (ConversionStatus, error) {
	binding, _, err := b.resolveBinding(ctx, eoaAddress, chainID)
	if err != nil {
		return ConversionStatus{}, err
	}
	return b.conversionStatus(ctx, binding)
}

// PrepareConversion builds an unsigned token transfer from the EOA to its
// smart account, funding the smart account with gas first when it cannot pay
// for the eventual withdrawal itself. An empty amount means the full EOA
// token balance.
func (b *Bridge) PrepareConversion(ctx context.Context, eoaAddress string, chainID uint64, amount string) (ConversionPlan, error) {
	binding, _, err := b.resolveBinding(ctx, eoaAddress, chainID)
	if err != nil {
		return ConversionPlan{}, err
	}

	status, err := b.conversionStatus(ctx, binding)
	if err != nil {
		return ConversionPlan{}, err
	}

	if !status.HasToken {
		return ConversionPlan{}, ErrNoConvertBalance
	}

	transferAmount := status.EOATokenBalance
	if amount != "" {
		transferAmount, err = ParseUnits(amount, b.cfg.TokenDecimals)
		if err != nil {
			return ConversionPlan{}, err
		}
	}
	if transferAmount.Cmp(status.EOATokenBalance) > 0 {
		return ConversionPlan{}, ErrAmountExceedsBalance
	}

	smartAccount := common.HexToAddress(binding.SmartAccountAddress)

	plan := ConversionPlan{Amount: transferAmount}
	if status.NeedsGasFunding {
		txHash, err := b.funder.Fund(ctx, smartAccount, b.cfg.FundingAmount)
		if err != nil {
			return ConversionPlan{}, fmt.Errorf("fund gas: %w", err)
		}
		plan.GasFunded = true
		plan.FundingTxHash = txHash

		b.logs.Infow("smart account funded with gas",
			"smart_account", binding.SmartAccountAddress,
			"amount", b.cfg.FundingAmount.String(),
			"tx_hash", txHash.Hex())

		// settlement margin on top of the mined receipt
		if b.cfg.SettleDelay > 0 {
			select {
			case <-ctx.Done():
				return ConversionPlan{}, ctx.Err()
			case <-time.After(b.cfg.SettleDelay):
			}
		}
	}

	data, err := ethereum.EncodeTokenTransfer(smartAccount, transferAmount)
	if err != nil {
		return ConversionPlan{}, fmt.Errorf("encode transfer: %w", err)
	}

	plan.Transfer = PreparedTransfer{
		From:     common.HexToAddress(binding.EOAAddress),
		To:       b.cfg.TokenAddress,
		Value:    big.NewInt(0),
		Data:     data,
		GasLimit: b.cfg.TransferGasLimit,
		ChainID:  chainID,
	}

	return plan, nil
}

// WithdrawalStatus reports whether the smart account can move its tokens back
// to the EOA.
func (b *Bridge) WithdrawalStatus(ctx context.Context, eoaAddress string, chainID uint64) (WithdrawalStatus, error) {
	binding, _, err := b.resolveBinding(ctx, eoaAddress, chainID)
	if err != nil {
		return WithdrawalStatus{}, err
	}
	return b.withdrawalStatus(ctx, binding)
}

// PrepareWithdrawal builds the UserOperation moving tokens from the smart
// account back to the EOA. Both token balance and gas are hard requirements:
// there is no auto-funding on this path, since the account lacking gas is the
// one that would pay for it.
func (b *Bridge) PrepareWithdrawal(ctx context.Context, msg WithdrawMessage) (WithdrawalPlan, error) {
	binding, _, err := b.resolveBinding(ctx, msg.EOAAddress, msg.ChainID)
	if err != nil {
		return WithdrawalPlan{}, err
	}

	status, err := b.withdrawalStatus(ctx, binding)
	if err != nil {
		return WithdrawalPlan{}, err
	}

	if !status.HasToken {
		return WithdrawalPlan{}, ErrNoWithdrawBalance
	}
	if !status.HasGas {
		return WithdrawalPlan{}, ErrInsufficientGas
	}

	withdrawAmount := status.SmartAccountTokenBalance
	if !msg.WithdrawAll {
		if msg.Amount == "" {
			return WithdrawalPlan{}, ErrAmountRequired
		}
		withdrawAmount, err = ParseUnits(msg.Amount, b.cfg.TokenDecimals)
		if err != nil {
			return WithdrawalPlan{}, err
		}
	}
	if withdrawAmount.Cmp(status.SmartAccountTokenBalance) > 0 {
		return WithdrawalPlan{}, ErrAmountExceedsBalance
	}

	eoa := common.HexToAddress(binding.EOAAddress)
	smartAccount := common.HexToAddress(binding.SmartAccountAddress)

	transferData, err := ethereum.EncodeTokenTransfer(eoa, withdrawAmount)
	if err != nil {
		return WithdrawalPlan{}, fmt.Errorf("encode transfer: %w", err)
	}

	callData, err := ethereum.EncodeExecute(b.cfg.TokenAddress, big.NewInt(0), transferData)
	if err != nil {
		return WithdrawalPlan{}, fmt.Errorf("encode execute: %w", err)
	}

	nonce, err := b.node.AccountNonce(ctx, smartAccount)
	if err != nil {
		return WithdrawalPlan{}, fmt.Errorf("get account nonce: %w", err)
	}

	op := UserOperation{
		Sender:               smartAccount,
		Nonce:                nonce,
		CallData:             callData,
		CallGasLimit:         new(big.Int).SetUint64(b.cfg.TransferGasLimit),
		VerificationGasLimit: withdrawVerificationGasLimit,
		PreVerificationGas:   withdrawPreVerificationGas,
		MaxFeePerGas:         withdrawMaxFeePerGas,
		MaxPriorityFeePerGas: withdrawMaxPriorityFeePerGas,
	}

	b.logs.Infow("withdrawal prepared",
		"smart_account", binding.SmartAccountAddress,
		"amount", withdrawAmount.String(),
		"nonce", nonce.String())

	return WithdrawalPlan{
		Amount:        withdrawAmount,
		UserOperation: op,
	}, nil
}

func (b *Bridge) resolveBinding(ctx context.Context, eoaAddress string, chainID uint64) (registry.Binding, bool, error) {
	if chainID != b.cfg.ChainID {
		return registry.Binding{}, false, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	if !common.IsHexAddress(eoaAddress) {
		return registry.Binding{}, false, ErrInvalidAddress
	}

	binding, err := b.registry.Get(ctx, eoaAddress, chainID)
	if err == nil {
		return b.refreshDeployment(ctx, binding)
	}
	if !errors.Is(err, registry.ErrBindingNotFound) {
		return registry.Binding{}, false, fmt.Errorf("get binding: %w", err)
	}

	owner := common.HexToAddress(eoaAddress)
	smartAccount, err := b.node.DeriveAccountAddress(ctx, owner, big.NewInt(0))
	if err != nil {
		return registry.Binding{}, false, fmt.Errorf("derive smart account address: %w", err)
	}

	deployed, err := b.node.IsDeployed(ctx, smartAccount)
	if err != nil {
		return registry.Binding{}, false, fmt.Errorf("check deployment: %w", err)
	}

	now := time.Now().UTC()
	binding = registry.Binding{
		EOAAddress:          strings.ToLower(eoaAddress),
		SmartAccountAddress: strings.ToLower(smartAccount.Hex()),
		IsDeployed:          deployed,
		ChainID:             chainID,
		CreatedAt:           now,
		LinkedAt:            now,
	}

	if err := b.registry.Put(ctx, binding); err != nil {
		return registry.Binding{}, false, fmt.Errorf("store binding: %w", err)
	}

	b.logs.Infow("smart account linked",
		"eoa", binding.EOAAddress,
		"smart_account", binding.SmartAccountAddress,
		"deployed", deployed,
		"chain_id", chainID)

	return binding, true, nil
}

// refreshDeployment flips the deployment flag once bytecode shows up at the
// smart account address. The flag never goes back to false.
func (b *Bridge) refreshDeployment(ctx context.Context, binding registry.Binding) (registry.Binding, bool, error) {
	if binding.IsDeployed {
		return binding, false, nil
	}

	deployed, err := b.node.IsDeployed(ctx, common.HexToAddress(binding.SmartAccountAddress))
	if err != nil {
		return registry.Binding{}, false, fmt.Errorf("check deployment: %w", err)
	}
	if !deployed {
		return binding, false, nil
	}

	isDeployed := true
	updated, err := b.registry.Update(ctx, binding.EOAAddress, binding.ChainID, registry.BindingUpdate{IsDeployed: &isDeployed})
	if err != nil {
		return registry.Binding{}, false, fmt.Errorf("update deployment flag: %w", err)
	}

	return updated, false, nil
}

func (b *Bridge) conversionStatus(ctx context.Context, binding registry.Binding) (ConversionStatus, error) {
	eoa := common.HexToAddress(binding.EOAAddress)
	smartAccount := common.HexToAddress(binding.SmartAccountAddress)

	eoaToken, err := b.node.TokenBalance(ctx, eoa)
	if err != nil {
		return ConversionStatus{}, fmt.Errorf("get EOA token balance: %w", err)
	}

	smartToken, err := b.node.TokenBalance(ctx, smartAccount)
	if err != nil {
		return ConversionStatus{}, fmt.Errorf("get smart account token balance: %w", err)
	}

	smartNative, err := b.node.NativeBalance(ctx, smartAccount)
	if err != nil {
		return ConversionStatus{}, fmt.Errorf("get smart account native balance: %w", err)
	}

	hasGas, err := b.node.HasSufficientGas(ctx, smartAccount, b.cfg.TransferGasLimit)
	if err != nil {
		return ConversionStatus{}, fmt.Errorf("check gas sufficiency: %w", err)
	}

	hasToken := eoaToken.Sign() > 0

	return ConversionStatus{
		HasGas:                    hasGas,
		HasToken:                  hasToken,
		EOATokenBalance:           eoaToken,
		SmartAccountTokenBalance:  smartToken,
		SmartAccountNativeBalance: smartNative,
		NeedsGasFunding:           !hasGas && hasToken,
	}, nil
}

func (b *Bridge) withdrawalStatus(ctx context.Context, binding registry.Binding) (WithdrawalStatus, error) {
	smartAccount := common.HexToAddress(binding.SmartAccountAddress)

	smartToken, err := b.node.TokenBalance(ctx, smartAccount)
	if err != nil {
		return WithdrawalStatus{}, fmt.Errorf("get smart account token balance: %w", err)
	}

	hasGas, err := b.node.HasSufficientGas(ctx, smartAccount, b.cfg.TransferGasLimit)
	if err != nil {
		return WithdrawalStatus{}, fmt.Errorf("check gas sufficiency: %w", err)
	}

	hasToken := smartToken.Sign() > 0

	return WithdrawalStatus{
		HasGas:                   hasGas,
		HasToken:                 hasToken,
		SmartAccountTokenBalance: smartToken,
		CanWithdraw:              hasGas && hasToken,
	}, nil
}
