package ethereum_test

import (
	"context"
	"errors"
	"math/big"

	"accountbridge/internal/ethereum"
	"accountbridge/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NodeService", func() {
	var (
		service    *ethereum.NodeService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error

		factoryAddress    common.Address
		tokenAddress      common.Address
		entryPointAddress common.Address
		account           common.Address
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		testErr = errors.New("test error")

		factoryAddress = common.HexToAddress("0x9406Cc6185a346906296840746125a0E44976454")
		tokenAddress = common.HexToAddress("0xcac524bca292aaade2df8a05cc58f0a65b1b3bb9")
		entryPointAddress = common.HexToAddress("0x5FF137D4b0FDCD49DcA30c7CF57E578a026d2789")
		account = common.HexToAddress("0x1111111111111111111111111111111111111111")

		service = ethereum.NewNodeService(fakeClient, ethereum.NodeConfig{
			FactoryAddress:    factoryAddress,
			TokenAddress:      tokenAddress,
			EntryPointAddress: entryPointAddress,
		})
	})

	Describe("DeriveAccountAddress", func() {
		var (
			derived common.Address
			salt    *big.Int
			result  common.Address
			err     error
		)

		BeforeEach(func() {
			derived = common.HexToAddress("0x2222222222222222222222222222222222222222")
			salt = big.NewInt(0)
		})

		JustBeforeEach(func() {
			result, err = service.DeriveAccountAddress(ctx, account, salt)
		})

		When("the factory call succeeds", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(common.LeftPadBytes(derived.Bytes(), 32), nil)
			})

			It("should return the derived address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(derived))

				Expect(fakeClient.CallContractCallCount()).To(Equal(1))
				_, argMsg, argBlock := fakeClient.CallContractArgsForCall(0)
				Expect(*argMsg.To).To(Equal(factoryAddress))
				Expect(argMsg.Data).To(HaveLen(68))
				Expect(argBlock).To(BeNil())
			})
		})

		When("the factory call fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, testErr)
			})

			It("should return a hard error without guessing an address", func() {
				Expect(err).To(MatchError(ContainSubstring("factory getAddress call")))
				Expect(result).To(Equal(common.Address{}))
			})
		})

		When("the factory returns malformed data", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns([]byte{0x01, 0x02}, nil)
			})

			It("should return an unpack error", func() {
				Expect(err).To(MatchError(ContainSubstring("unpack getAddress result")))
			})
		})
	})

	Describe("IsDeployed", func() {
		var (
			deployed bool
			err      error
		)

		JustBeforeEach(func() {
			deployed, err = service.IsDeployed(ctx, account)
		})

		When("bytecode exists at the address", func() {
			BeforeEach(func() {
				fakeClient.CodeAtReturns([]byte{0x60, 0x80}, nil)
			})

			It("should report deployed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(deployed).To(BeTrue())
			})
		})

		When("the address holds no code", func() {
			BeforeEach(func() {
				fakeClient.CodeAtReturns([]byte{}, nil)
			})

			It("should report not deployed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(deployed).To(BeFalse())
			})
		})

		When("the code read fails", func() {
			BeforeEach(func() {
				fakeClient.CodeAtReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("get code")))
			})
		})
	})

	Describe("TokenBalance", func() {
		var (
			balance *big.Int
			err     error
		)

		JustBeforeEach(func() {
			balance, err = service.TokenBalance(ctx, account)
		})

		When("the token call succeeds", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(common.LeftPadBytes(big.NewInt(5_000_000).Bytes(), 32), nil)
			})

			It("should return the balance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.String()).To(Equal("5000000"))

				_, argMsg, _ := fakeClient.CallContractArgsForCall(0)
				Expect(*argMsg.To).To(Equal(tokenAddress))
				Expect(argMsg.Data).To(HaveLen(36))
			})
		})

		When("the token call fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("token balanceOf call")))
			})
		})
	})

	Describe("HasSufficientGas", func() {
		var (
			sufficient bool
			err        error
		)

		BeforeEach(func() {
			fakeClient.SuggestGasPriceReturns(big.NewInt(1_000_000_000), nil)
		})

		JustBeforeEach(func() {
			sufficient, err = service.HasSufficientGas(ctx, account, 65000)
		})

		When("the balance covers the gas cost exactly", func() {
			BeforeEach(func() {
				fakeClient.BalanceAtReturns(big.NewInt(65_000_000_000_000), nil)
			})

			It("should report sufficient", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sufficient).To(BeTrue())
			})
		})

		When("the balance is one wei short", func() {
			BeforeEach(func() {
				fakeClient.BalanceAtReturns(big.NewInt(64_999_999_999_999), nil)
			})

			It("should report insufficient", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sufficient).To(BeFalse())
			})
		})

		When("the gas price read fails", func() {
			BeforeEach(func() {
				fakeClient.BalanceAtReturns(big.NewInt(0), nil)
				fakeClient.SuggestGasPriceReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("suggest gas price")))
			})
		})
	})

	Describe("AccountNonce", func() {
		var (
			nonce *big.Int
			err   error
		)

		JustBeforeEach(func() {
			nonce, err = service.AccountNonce(ctx, account)
		})

		When("the entry point call succeeds", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(common.LeftPadBytes(big.NewInt(7).Bytes(), 32), nil)
			})

			It("should return the nonce from the entry point", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(nonce.String()).To(Equal("7"))

				_, argMsg, _ := fakeClient.CallContractArgsForCall(0)
				Expect(*argMsg.To).To(Equal(entryPointAddress))
			})
		})

		When("the entry point call fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("entry point getNonce call")))
			})
		})
	})
})
