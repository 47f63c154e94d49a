package ethereum_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"

	"accountbridge/internal/ethereum"
	"accountbridge/internal/ethereum/fake"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("GasFunder", func() {
	var (
		funder     *ethereum.GasFunder
		fakeClient *fake.EthClient
		ctx        context.Context
		keyHex     string
		chainID    uint64
		target     common.Address
		amount     *big.Int
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		chainID = uint64(11155111)
		target = common.HexToAddress("0x2222222222222222222222222222222222222222")
		amount = big.NewInt(1_000_000_000_000_000)
		testErr = errors.New("test error")

		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		keyHex = hex.EncodeToString(crypto.FromECDSA(key))

		funder, err = ethereum.NewGasFunder(zap.NewNop().Sugar(), fakeClient, keyHex, chainID)
		Expect(err).NotTo(HaveOccurred())

		fakeClient.BalanceAtReturns(big.NewInt(2_000_000_000_000_000), nil)
		fakeClient.PendingNonceAtReturns(3, nil)
		fakeClient.SuggestGasPriceReturns(big.NewInt(1_000_000_000), nil)
		fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
	})

	Describe("NewGasFunder", func() {
		When("the key is malformed", func() {
			It("should return an error", func() {
				_, err := ethereum.NewGasFunder(zap.NewNop().Sugar(), fakeClient, "zz", chainID)
				Expect(err).To(MatchError(ContainSubstring("parse funding key")))
			})
		})

		When("the key carries a 0x prefix", func() {
			It("should parse it anyway", func() {
				prefixed, err := ethereum.NewGasFunder(zap.NewNop().Sugar(), fakeClient, "0x"+keyHex, chainID)
				Expect(err).NotTo(HaveOccurred())
				Expect(prefixed.Address()).To(Equal(funder.Address()))
			})
		})

		When("the key is empty", func() {
			It("should construct a disabled funder", func() {
				disabled, err := ethereum.NewGasFunder(zap.NewNop().Sugar(), fakeClient, "", chainID)
				Expect(err).NotTo(HaveOccurred())
				Expect(disabled.Address()).To(Equal(common.Address{}))

				_, err = disabled.Fund(ctx, target, amount)
				Expect(err).To(MatchError(ethereum.ErrFunderNotConfigured))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Fund", func() {
		var (
			txHash common.Hash
			err    error
		)

		JustBeforeEach(func() {
			txHash, err = funder.Fund(ctx, target, amount)
		})

		When("the transfer is mined successfully", func() {
			It("should send a signed transfer and return its hash", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				_, sentTx := fakeClient.SendTransactionArgsForCall(0)
				Expect(sentTx.Nonce()).To(Equal(uint64(3)))
				Expect(sentTx.Value().String()).To(Equal(amount.String()))
				Expect(sentTx.Gas()).To(Equal(uint64(21000)))
				Expect(*sentTx.To()).To(Equal(target))
				Expect(txHash).To(Equal(sentTx.Hash()))

				_, argHash := fakeClient.TransactionReceiptArgsForCall(0)
				Expect(argHash).To(Equal(sentTx.Hash()))
			})
		})

		When("the receipt is not available on the first poll", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, goeth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(1, &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("should keep polling until the transfer is mined", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})
		})

		When("the funding account balance is too low", func() {
			BeforeEach(func() {
				fakeClient.BalanceAtReturns(big.NewInt(1), nil)
			})

			It("should return ErrInsufficientFunderBalance without sending", func() {
				Expect(err).To(MatchError(ethereum.ErrInsufficientFunderBalance))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})

		When("the transfer reverts", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("should return ErrFundingReverted", func() {
				Expect(err).To(MatchError(ethereum.ErrFundingReverted))
				Expect(txHash).To(Equal(common.Hash{}))
			})
		})

		When("sending fails", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(testErr)
			})

			It("should return the error without waiting for a receipt", func() {
				Expect(err).To(MatchError(ContainSubstring("send funding transaction")))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(0))
			})
		})

		When("the context is cancelled while polling", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionReceiptReturns(nil, goeth.NotFound)
			})

			It("should return the context error", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	Describe("concurrent funding", func() {
		It("should serialize sends so nonces never collide", func() {
			var nonce uint64
			fakeClient.PendingNonceAtStub = func(context.Context, common.Address) (uint64, error) {
				return atomic.AddUint64(&nonce, 1) - 1, nil
			}

			var wg sync.WaitGroup
			for i := 0; i < 2; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					_, fundErr := funder.Fund(ctx, target, amount)
					Expect(fundErr).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			Expect(fakeClient.SendTransactionCallCount()).To(Equal(2))
			_, tx1 := fakeClient.SendTransactionArgsForCall(0)
			_, tx2 := fakeClient.SendTransactionArgsForCall(1)
			Expect([]uint64{tx1.Nonce(), tx2.Nonce()}).To(ConsistOf(uint64(0), uint64(1)))
		})
	})
})
