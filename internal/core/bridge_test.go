package core_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"accountbridge/internal/core"
	"accountbridge/internal/core/fake"
	"accountbridge/internal/registry"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Bridge", func() {
	var (
		bridge       *core.Bridge
		fakeRegistry *fake.Registry
		fakeNode     *fake.NodeService
		fakeFunder   *fake.GasFunder
		ctx          context.Context
		testErr      error

		eoaAddress   string
		smartAddress string
		tokenAddress common.Address
		chainID      uint64
		binding      registry.Binding
	)

	BeforeEach(func() {
		fakeRegistry = new(fake.Registry)
		fakeNode = new(fake.NodeService)
		fakeFunder = new(fake.GasFunder)
		ctx = context.Background()
		testErr = errors.New("test error")

		eoaAddress = "0x1111111111111111111111111111111111111111"
		smartAddress = "0x2222222222222222222222222222222222222222"
		tokenAddress = common.HexToAddress("0xcac524bca292aaade2df8a05cc58f0a65b1b3bb9")
		chainID = uint64(11155111)

		binding = registry.Binding{
			ID:                  1,
			EOAAddress:          eoaAddress,
			SmartAccountAddress: smartAddress,
			IsDeployed:          true,
			ChainID:             chainID,
			CreatedAt:           time.Now().UTC(),
			LinkedAt:            time.Now().UTC(),
		}

		bridge = core.NewBridge(
			zap.NewNop().Sugar(),
			fakeRegistry,
			fakeNode,
			fakeFunder,
			core.Config{
				ChainID:          chainID,
				TokenAddress:     tokenAddress,
				TokenDecimals:    6,
				TransferGasLimit: 65000,
				FundingAmount:    big.NewInt(1_000_000_000_000_000),
			})
	})

	Describe("CreateAccount", func() {
		var (
			msg    core.CreateAccountMessage
			result core.AccountResult
			err    error
		)

		BeforeEach(func() {
			msg = core.CreateAccountMessage{
				EOAAddress: eoaAddress,
				ChainID:    chainID,
				WalletName: "Trust Wallet",
			}
		})

		JustBeforeEach(func() {
			result, err = bridge.CreateAccount(ctx, msg)
		})

		When("no binding exists yet", func() {
			BeforeEach(func() {
				fakeRegistry.GetReturns(registry.Binding{}, registry.ErrBindingNotFound)
				fakeNode.DeriveAccountAddressReturns(common.HexToAddress(smartAddress), nil)
				fakeNode.IsDeployedReturns(false, nil)
			})

			It("should derive, store and return a new binding", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.AlreadyExists).To(BeFalse())
				Expect(result.Binding.EOAAddress).To(Equal(eoaAddress))
				Expect(result.Binding.SmartAccountAddress).To(Equal(smartAddress))
				Expect(result.Binding.IsDeployed).To(BeFalse())
				Expect(result.Binding.ChainID).To(Equal(chainID))

				Expect(fakeNode.DeriveAccountAddressCallCount()).To(Equal(1))
				_, argOwner, argSalt := fakeNode.DeriveAccountAddressArgsForCall(0)
				Expect(argOwner).To(Equal(common.HexToAddress(eoaAddress)))
				Expect(argSalt.Sign()).To(BeZero())

				Expect(fakeRegistry.PutCallCount()).To(Equal(1))
				_, stored := fakeRegistry.PutArgsForCall(0)
				Expect(stored.SmartAccountAddress).To(Equal(smartAddress))
			})

			It("should classify the wallet", func() {
				Expect(result.Wallet.Type).To(Equal(core.WalletTrust))
				Expect(result.Wallet.SupportsSmartAccounts).To(BeFalse())
			})
		})

		When("the binding already exists", func() {
			BeforeEach(func() {
				fakeRegistry.GetReturns(binding, nil)
			})

			It("should return it without deriving again", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.AlreadyExists).To(BeTrue())
				Expect(result.Binding).To(Equal(binding))
				Expect(fakeNode.DeriveAccountAddressCallCount()).To(Equal(0))
				Expect(fakeRegistry.PutCallCount()).To(Equal(0))
			})
		})

		When("the stored binding is not deployed but bytecode showed up", func() {
			var updated registry.Binding

			BeforeEach(func() {
				binding.IsDeployed = false
				updated = binding
				updated.IsDeployed = true

				fakeRegistry.GetReturns(binding, nil)
				fakeNode.IsDeployedReturns(true, nil)
				fakeRegistry.UpdateReturns(updated, nil)
			})

			It("should flip the deployment flag", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Binding.IsDeployed).To(BeTrue())

				Expect(fakeRegistry.UpdateCallCount()).To(Equal(1))
				_, argEOA, argChain, argUpd := fakeRegistry.UpdateArgsForCall(0)
				Expect(argEOA).To(Equal(eoaAddress))
				Expect(argChain).To(Equal(chainID))
				Expect(argUpd.IsDeployed).NotTo(BeNil())
				Expect(*argUpd.IsDeployed).To(BeTrue())
			})
		})

		When("the chain is not supported", func() {
			BeforeEach(func() {
				msg.ChainID = 56
			})

			It("should return ErrUnsupportedChain", func() {
				Expect(err).To(MatchError(core.ErrUnsupportedChain))
				Expect(fakeRegistry.GetCallCount()).To(Equal(0))
			})
		})

		When("the EOA address is malformed", func() {
			BeforeEach(func() {
				msg.EOAAddress = "not-an-address"
			})

			It("should return ErrInvalidAddress", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeRegistry.GetCallCount()).To(Equal(0))
			})
		})

		When("address derivation fails", func() {
			BeforeEach(func() {
				fakeRegistry.GetReturns(registry.Binding{}, registry.ErrBindingNotFound)
				fakeNode.DeriveAccountAddressReturns(common.Address{}, testErr)
			})

			It("should propagate the error and store nothing", func() {
				Expect(err).To(MatchError(ContainSubstring("derive smart account address")))
				Expect(fakeRegistry.PutCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ConversionStatus", func() {
		var (
			status core.ConversionStatus
			err    error
		)

		BeforeEach(func() {
			fakeRegistry.GetReturns(binding, nil)
		})

		JustBeforeEach(func() {
			status, err = bridge.ConversionStatus(ctx, eoaAddress, chainID)
		})

		When("the EOA holds tokens and the smart account has no gas", func() {
			BeforeEach(func() {
				fakeNode.TokenBalanceReturnsOnCall(0, big.NewInt(5_000_000), nil)
				fakeNode.TokenBalanceReturnsOnCall(1, big.NewInt(0), nil)
				fakeNode.NativeBalanceReturns(big.NewInt(0), nil)
				fakeNode.HasSufficientGasReturns(false, nil)
			})

			It("should report that gas funding is needed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.HasToken).To(BeTrue())
				Expect(status.HasGas).To(BeFalse())
				Expect(status.NeedsGasFunding).To(BeTrue())
				Expect(status.EOATokenBalance.String()).To(Equal("5000000"))
			})
		})

		When("the EOA holds no tokens", func() {
			BeforeEach(func() {
				fakeNode.TokenBalanceReturns(big.NewInt(0), nil)
				fakeNode.NativeBalanceReturns(big.NewInt(0), nil)
				fakeNode.HasSufficientGasReturns(false, nil)
			})

			It("should not ask for gas funding", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.HasToken).To(BeFalse())
				Expect(status.NeedsGasFunding).To(BeFalse())
			})
		})

		When("a balance read fails", func() {
			BeforeEach(func() {
				fakeNode.TokenBalanceReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("token balance")))
			})
		})
	})

	Describe("PrepareConversion", func() {
		var (
			amount string
			plan   core.ConversionPlan
			err    error
		)

		BeforeEach(func() {
			amount = ""
			fakeRegistry.GetReturns(binding, nil)
			fakeNode.TokenBalanceReturnsOnCall(0, big.NewInt(5_000_000), nil)
			fakeNode.TokenBalanceReturnsOnCall(1, big.NewInt(0), nil)
			fakeNode.NativeBalanceReturns(big.NewInt(0), nil)
			fakeNode.HasSufficientGasReturns(true, nil)
		})

		JustBeforeEach(func() {
			plan, err = bridge.PrepareConversion(ctx, eoaAddress, chainID, amount)
		})

		When("no amount is given", func() {
			It("should prepare a transfer of the full EOA balance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(plan.Amount.String()).To(Equal("5000000"))
				Expect(plan.GasFunded).To(BeFalse())
				Expect(fakeFunder.FundCallCount()).To(Equal(0))

				Expect(plan.Transfer.From).To(Equal(common.HexToAddress(eoaAddress)))
				Expect(plan.Transfer.To).To(Equal(tokenAddress))
				Expect(plan.Transfer.Value.Sign()).To(BeZero())
				Expect(plan.Transfer.Data).To(HaveLen(68))
				Expect(plan.Transfer.GasLimit).To(Equal(uint64(65000)))
				Expect(plan.Transfer.ChainID).To(Equal(chainID))
			})
		})

		When("a partial amount is given", func() {
			BeforeEach(func() {
				amount = "2.5"
			})

			It("should scale it by the token decimals", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(plan.Amount.String()).To(Equal("2500000"))
			})
		})

		When("the amount exceeds the EOA balance", func() {
			BeforeEach(func() {
				amount = "5.000001"
			})

			It("should return ErrAmountExceedsBalance", func() {
				Expect(err).To(MatchError(core.ErrAmountExceedsBalance))
			})
		})

		When("the amount is malformed", func() {
			BeforeEach(func() {
				amount = "five"
			})

			It("should return ErrInvalidAmount", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
			})
		})

		When("the EOA holds no tokens", func() {
			BeforeEach(func() {
				fakeNode.TokenBalanceReturnsOnCall(0, big.NewInt(0), nil)
			})

			It("should return ErrNoConvertBalance", func() {
				Expect(err).To(MatchError(core.ErrNoConvertBalance))
				Expect(fakeFunder.FundCallCount()).To(Equal(0))
			})
		})

		When("the smart account cannot pay for gas", func() {
			var fundingHash common.Hash

			BeforeEach(func() {
				fundingHash = common.HexToHash("0xfeed")
				fakeNode.HasSufficientGasReturns(false, nil)
				fakeFunder.FundReturns(fundingHash, nil)
			})

			It("should fund the smart account before preparing the transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(plan.GasFunded).To(BeTrue())
				Expect(plan.FundingTxHash).To(Equal(fundingHash))

				Expect(fakeFunder.FundCallCount()).To(Equal(1))
				_, argTo, argAmount := fakeFunder.FundArgsForCall(0)
				Expect(argTo).To(Equal(common.HexToAddress(smartAddress)))
				Expect(argAmount.String()).To(Equal("1000000000000000"))
			})

			When("funding fails", func() {
				BeforeEach(func() {
					fakeFunder.FundReturns(common.Hash{}, testErr)
				})

				It("should return the error", func() {
					Expect(err).To(MatchError(ContainSubstring("fund gas")))
				})
			})
		})
	})

	Describe("WithdrawalStatus", func() {
		var (
			status core.WithdrawalStatus
			err    error
		)

		BeforeEach(func() {
			fakeRegistry.GetReturns(binding, nil)
			fakeNode.TokenBalanceReturns(big.NewInt(3_000_000), nil)
			fakeNode.HasSufficientGasReturns(true, nil)
		})

		JustBeforeEach(func() {
			status, err = bridge.WithdrawalStatus(ctx, eoaAddress, chainID)
		})

		It("should report that withdrawal is possible", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(status.HasToken).To(BeTrue())
			Expect(status.HasGas).To(BeTrue())
			Expect(status.CanWithdraw).To(BeTrue())
			Expect(status.SmartAccountTokenBalance.String()).To(Equal("3000000"))
		})

		When("the smart account has no gas", func() {
			BeforeEach(func() {
				fakeNode.HasSufficientGasReturns(false, nil)
			})

			It("should report that withdrawal is blocked", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.CanWithdraw).To(BeFalse())
			})
		})
	})

	Describe("PrepareWithdrawal", func() {
		var (
			msg  core.WithdrawMessage
			plan core.WithdrawalPlan
			err  error
		)

		BeforeEach(func() {
			msg = core.WithdrawMessage{
				EOAAddress:  eoaAddress,
				ChainID:     chainID,
				WithdrawAll: true,
			}

			fakeRegistry.GetReturns(binding, nil)
			fakeNode.TokenBalanceReturns(big.NewInt(3_000_000), nil)
			fakeNode.HasSufficientGasReturns(true, nil)
			fakeNode.AccountNonceReturns(big.NewInt(7), nil)
		})

		JustBeforeEach(func() {
			plan, err = bridge.PrepareWithdrawal(ctx, msg)
		})

		When("withdrawing the full balance", func() {
			It("should build a user operation for the smart account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(plan.Amount.String()).To(Equal("3000000"))

				op := plan.UserOperation
				Expect(op.Sender).To(Equal(common.HexToAddress(smartAddress)))
				Expect(op.Nonce.String()).To(Equal("7"))
				Expect(op.CallData).NotTo(BeEmpty())
				Expect(op.CallGasLimit.String()).To(Equal("65000"))
				Expect(op.VerificationGasLimit.String()).To(Equal("100000"))
				Expect(op.PreVerificationGas.String()).To(Equal("21000"))
				Expect(op.MaxFeePerGas.String()).To(Equal("5000000000"))
				Expect(op.MaxPriorityFeePerGas.String()).To(Equal("2000000000"))
				Expect(op.InitCode).To(BeEmpty())
				Expect(op.Signature).To(BeEmpty())

				Expect(fakeNode.AccountNonceCallCount()).To(Equal(1))
				_, argSender := fakeNode.AccountNonceArgsForCall(0)
				Expect(argSender).To(Equal(common.HexToAddress(smartAddress)))
			})
		})

		When("withdrawing a partial amount", func() {
			BeforeEach(func() {
				msg.WithdrawAll = false
				msg.Amount = "1.5"
			})

			It("should scale the amount by the token decimals", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(plan.Amount.String()).To(Equal("1500000"))
			})
		})

		When("no amount is given and withdrawAll is false", func() {
			BeforeEach(func() {
				msg.WithdrawAll = false
				msg.Amount = ""
			})

			It("should return ErrAmountRequired", func() {
				Expect(err).To(MatchError(core.ErrAmountRequired))
			})
		})

		When("the amount exceeds the smart account balance", func() {
			BeforeEach(func() {
				msg.WithdrawAll = false
				msg.Amount = "3.000001"
			})

			It("should return ErrAmountExceedsBalance", func() {
				Expect(err).To(MatchError(core.ErrAmountExceedsBalance))
			})
		})

		When("the smart account holds no tokens", func() {
			BeforeEach(func() {
				fakeNode.TokenBalanceReturns(big.NewInt(0), nil)
			})

			It("should return ErrNoWithdrawBalance", func() {
				Expect(err).To(MatchError(core.ErrNoWithdrawBalance))
			})
		})

		When("the smart account has no gas", func() {
			BeforeEach(func() {
				fakeNode.HasSufficientGasReturns(false, nil)
			})

			It("should return ErrInsufficientGas without auto-funding", func() {
				Expect(err).To(MatchError(core.ErrInsufficientGas))
				Expect(fakeFunder.FundCallCount()).To(Equal(0))
			})
		})

		When("the nonce read fails", func() {
			BeforeEach(func() {
				fakeNode.AccountNonceReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("get account nonce")))
			})
		})
	})
})
