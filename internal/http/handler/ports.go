package handler

import (
	"context"
	"net/http"

	"accountbridge/internal/core"
	"accountbridge/internal/registry"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BridgeService . BridgeService
type BridgeService interface {
	CreateAccount(ctx context.Context, msg core.CreateAccountMessage) (core.AccountResult, error)
	FetchOrCreateAccount(ctx context.Context, eoaAddress string, chainID uint64) (registry.Binding, bool, error)
	ConversionStatus(ctx context.Context, eoaAddress string, chainID uint64) (core.ConversionStatus, error)
	PrepareConversion(ctx context.Context, eoaAddress string, chainID uint64, amount string) (core.ConversionPlan, error)
	WithdrawalStatus(ctx context.Context, eoaAddress string, chainID uint64) (core.WithdrawalStatus, error)
	PrepareWithdrawal(ctx context.Context, msg core.WithdrawMessage) (core.WithdrawalPlan, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
