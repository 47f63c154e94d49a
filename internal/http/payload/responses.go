package payload

import (
	"accountbridge/internal/core"
	"accountbridge/internal/registry"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Big integers are rendered as decimal strings and byte blobs as 0x-prefixed
// hex so clients never lose precision to float parsing.

type AccountResponse struct {
	EOAAddress          string `json:"eoaAddress"`
	SmartAccountAddress string `json:"smartAccountAddress"`
	IsDeployed          bool   `json:"isDeployed"`
	ChainID             uint64 `json:"chainId"`
	CreatedAt           int64  `json:"createdAt"`
	LinkedAt            int64  `json:"linkedAt"`
}

func NewAccountResponse(binding registry.Binding) AccountResponse {
	return AccountResponse{
		EOAAddress:          binding.EOAAddress,
		SmartAccountAddress: binding.SmartAccountAddress,
		IsDeployed:          binding.IsDeployed,
		ChainID:             binding.ChainID,
		CreatedAt:           binding.CreatedAt.UnixMilli(),
		LinkedAt:            binding.LinkedAt.UnixMilli(),
	}
}

type CreateAccountResponse struct {
	Account       AccountResponse `json:"account"`
	Wallet        core.WalletType `json:"wallet"`
	AlreadyExists bool            `json:"alreadyExists"`
}

func NewCreateAccountResponse(result core.AccountResult) CreateAccountResponse {
	return CreateAccountResponse{
		Account:       NewAccountResponse(result.Binding),
		Wallet:        result.Wallet,
		AlreadyExists: result.AlreadyExists,
	}
}

type ConversionStatusResponse struct {
	HasGas                    bool   `json:"hasGas"`
	HasUSDC                   bool   `json:"hasUSDC"`
	EOAUSDCBalance            string `json:"eoaUSDCBalance"`
	SmartAccountUSDCBalance   string `json:"smartAccountUSDCBalance"`
	SmartAccountNativeBalance string `json:"smartAccountETHBalance"`
	NeedsGasFunding           bool   `json:"needsGasFunding"`
}

func NewConversionStatusResponse(status core.ConversionStatus) ConversionStatusResponse {
	return ConversionStatusResponse{
		HasGas:                    status.HasGas,
		HasUSDC:                   status.HasToken,
		EOAUSDCBalance:            status.EOATokenBalance.String(),
		SmartAccountUSDCBalance:   status.SmartAccountTokenBalance.String(),
		SmartAccountNativeBalance: status.SmartAccountNativeBalance.String(),
		NeedsGasFunding:           status.NeedsGasFunding,
	}
}

type WithdrawalStatusResponse struct {
	HasGas                  bool   `json:"hasGas"`
	HasUSDC                 bool   `json:"hasUSDC"`
	SmartAccountUSDCBalance string `json:"smartAccountUSDCBalance"`
	CanWithdraw             bool   `json:"canWithdraw"`
}

func NewWithdrawalStatusResponse(status core.WithdrawalStatus) WithdrawalStatusResponse {
	return WithdrawalStatusResponse{
		HasGas:                  status.HasGas,
		HasUSDC:                 status.HasToken,
		SmartAccountUSDCBalance: status.SmartAccountTokenBalance.String(),
		CanWithdraw:             status.CanWithdraw,
	}
}

// TransferTransactionResponse is the unsigned ERC-20 transfer the EOA owner
// signs and submits client side.
type TransferTransactionResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Data     string `json:"data"`
	GasLimit string `json:"gasLimit"`
	ChainID  uint64 `json:"chainId"`
}

type ConversionPlanResponse struct {
	GasFunded     bool                        `json:"gasFunded"`
	FundingTxHash string                      `json:"fundingTxHash,omitempty"`
	Amount        string                      `json:"amount"`
	Transaction   TransferTransactionResponse `json:"transaction"`
}

func NewConversionPlanResponse(plan core.ConversionPlan) ConversionPlanResponse {
	resp := ConversionPlanResponse{
		GasFunded: plan.GasFunded,
		Amount:    plan.Amount.String(),
		Transaction: TransferTransactionResponse{
			From:     plan.Transfer.From.Hex(),
			To:       plan.Transfer.To.Hex(),
			Value:    plan.Transfer.Value.String(),
			Data:     hexutil.Encode(plan.Transfer.Data),
			GasLimit: hexutil.EncodeUint64(plan.Transfer.GasLimit),
			ChainID:  plan.Transfer.ChainID,
		},
	}
	if plan.GasFunded {
		resp.FundingTxHash = plan.FundingTxHash.Hex()
	}
	return resp
}

// UserOperationResponse is the unsigned ERC-4337 operation handed to the
// client for signing and bundler submission.
type UserOperationResponse struct {
	Sender               string `json:"sender"`
	Nonce                string `json:"nonce"`
	InitCode             string `json:"initCode"`
	CallData             string `json:"callData"`
	CallGasLimit         string `json:"callGasLimit"`
	VerificationGasLimit string `json:"verificationGasLimit"`
	PreVerificationGas   string `json:"preVerificationGas"`
	MaxFeePerGas         string `json:"maxFeePerGas"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas"`
	PaymasterAndData     string `json:"paymasterAndData"`
	Signature            string `json:"signature"`
}

type WithdrawalPlanResponse struct {
	Amount        string                `json:"amount"`
	UserOperation UserOperationResponse `json:"userOperation"`
}

func NewWithdrawalPlanResponse(plan core.WithdrawalPlan) WithdrawalPlanResponse {
	op := plan.UserOperation
	return WithdrawalPlanResponse{
		Amount: plan.Amount.String(),
		UserOperation: UserOperationResponse{
			Sender:               op.Sender.Hex(),
			Nonce:                op.Nonce.String(),
			InitCode:             hexutil.Encode(op.InitCode),
			CallData:             hexutil.Encode(op.CallData),
			CallGasLimit:         op.CallGasLimit.String(),
			VerificationGasLimit: op.VerificationGasLimit.String(),
			PreVerificationGas:   op.PreVerificationGas.String(),
			MaxFeePerGas:         op.MaxFeePerGas.String(),
			MaxPriorityFeePerGas: op.MaxPriorityFeePerGas.String(),
			PaymasterAndData:     hexutil.Encode(op.PaymasterAndData),
			Signature:            hexutil.Encode(op.Signature),
		},
	}
}
