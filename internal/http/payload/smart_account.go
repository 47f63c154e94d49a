package payload

import (
	"encoding/json"
	"regexp"

	"accountbridge/internal/core"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

type CreateAccountRequest struct {
	EOAAddress string `json:"eoaAddress"`
	ChainID    uint64 `json:"chainId"`
	UserAgent  string `json:"userAgent"`
	WalletName string `json:"walletName"`
}

func (r CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EOAAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.ChainID, validation.Required),
	)
}

func (r CreateAccountRequest) ToMessage() core.CreateAccountMessage {
	return core.CreateAccountMessage{
		EOAAddress: r.EOAAddress,
		ChainID:    r.ChainID,
		UserAgent:  r.UserAgent,
		WalletName: r.WalletName,
	}
}

// ConvertRequest prepares a conversion. Amount is a human decimal token
// amount; empty means convert the full EOA balance. json.Number keeps both
// string and numeric JSON encodings working.
type ConvertRequest struct {
	EOAAddress string      `json:"eoaAddress"`
	ChainID    uint64      `json:"chainId"`
	Amount     json.Number `json:"amount,omitempty"`
}

func (r ConvertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EOAAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.ChainID, validation.Required),
	)
}

type WithdrawRequest struct {
	EOAAddress  string      `json:"eoaAddress"`
	ChainID     uint64      `json:"chainId"`
	Amount      json.Number `json:"amount,omitempty"`
	WithdrawAll bool        `json:"withdrawAll,omitempty"`
}

func (r WithdrawRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EOAAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.ChainID, validation.Required),
	)
}

func (r WithdrawRequest) ToMessage() core.WithdrawMessage {
	return core.WithdrawMessage{
		EOAAddress:  r.EOAAddress,
		ChainID:     r.ChainID,
		Amount:      r.Amount.String(),
		WithdrawAll: r.WithdrawAll,
	}
}

// StatusQuery holds the query parameters shared by all GET endpoints.
type StatusQuery struct {
	EOAAddress string
	ChainID    uint64
}

func (q StatusQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.EOAAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&q.ChainID, validation.Required),
	)
}
