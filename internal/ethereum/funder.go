package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"go.uber.org/zap"
)

var ErrFunderNotConfigured error = errors.New("funding account not configured")
var ErrInsufficientFunderBalance error = errors.New("funding account has insufficient balance")
var ErrFundingReverted error = errors.New("funding transaction reverted")

const receiptPollInterval = 500 * time.Millisecond

// GasFunder moves native currency from the custodial service key to smart
// accounts that cannot pay for gas themselves. All sends are serialized
// through a single mutex so concurrent funding requests cannot race on the
// custodial key's nonce.
type GasFunder struct {
	logs    *zap.SugaredLogger
	client  EthClient
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int

	mu sync.Mutex
}

// NewGasFunder parses the hex-encoded custodial key. An empty key is not an
// error: the funder is constructed disabled and every Fund call fails closed.
func NewGasFunder(logger *zap.SugaredLogger, ethClient EthClient, privateKeyHex string, chainID uint64) (*GasFunder, error) {
	funder := &GasFunder{
		logs:    logger,
		client:  ethClient,
		chainID: new(big.Int).SetUint64(chainID),
	}

	if privateKeyHex == "" {
		return funder, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse funding key: %w", err)
	}

	funder.key = key
	funder.from = crypto.PubkeyToAddress(key.PublicKey)
	return funder, nil
}

// Fund sends amount wei to the target address and blocks until the transfer
// is mined. The returned hash identifies the funding transaction.
func (g *GasFunder) Fund(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	if g.key == nil {
		return common.Hash{}, ErrFunderNotConfigured
	}

	// one in-flight send per custodial key
	g.mu.Lock()
	defer g.mu.Unlock()

	balance, err := g.client.BalanceAt(ctx, g.from, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("get funder balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return common.Hash{}, ErrInsufficientFunderBalance
	}

	nonce, err := g.client.PendingNonceAt(ctx, g.from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("get funder nonce: %w", err)
	}

	gasPrice, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("suggest gas price: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    amount,
		Gas:      params.TxGas,
		GasPrice: gasPrice,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(g.chainID), g.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign funding transaction: %w", err)
	}

	if err := g.client.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, fmt.Errorf("send funding transaction: %w", err)
	}

	g.logs.Infow("funding transaction sent",
		"to", to.Hex(),
		"amount", amount.String(),
		"nonce", nonce,
		"tx_hash", signedTx.Hash().Hex())

	receipt, err := g.waitMined(ctx, signedTx.Hash())
	if err != nil {
		return common.Hash{}, fmt.Errorf("wait for funding receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Hash{}, ErrFundingReverted
	}

	return signedTx.Hash(), nil
}

// Address returns the custodial funding address, or the zero address when the
// funder is disabled.
func (g *GasFunder) Address() common.Address {
	return g.from
}

func (g *GasFunder) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := g.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, goeth.NotFound) {
			return nil, fmt.Errorf("get receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
