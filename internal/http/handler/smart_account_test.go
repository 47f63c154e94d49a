package handler_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"accountbridge/internal/core"
	"accountbridge/internal/http/handler"
	"accountbridge/internal/http/handler/fake"
	"accountbridge/internal/registry"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SmartAccountHandler", func() {
	var (
		sh            *handler.SmartAccountHandler
		fakeBridge    *fake.BridgeService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error

		eoaAddress   string
		smartAddress string
		binding      registry.Binding
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeBridge = new(fake.BridgeService)
		fakeValidator = new(fake.RequestValidator)

		eoaAddress = "0x1111111111111111111111111111111111111111"
		smartAddress = "0x2222222222222222222222222222222222222222"
		binding = registry.Binding{
			ID:                  1,
			EOAAddress:          eoaAddress,
			SmartAccountAddress: smartAddress,
			IsDeployed:          false,
			ChainID:             11155111,
			CreatedAt:           time.Now().UTC(),
			LinkedAt:            time.Now().UTC(),
		}

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		sh = handler.NewSmartAccountHandler(zap.NewNop().Sugar(), fakeValidator, fakeBridge)
	})

	Describe("HandleGetAccount", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/smart-account/create?eoaAddress="+eoaAddress+"&chainId=11155111", nil)
			fakeBridge.FetchOrCreateAccountReturns(binding, true, nil)
		})

		JustBeforeEach(func() {
			sh.HandleGetAccount(w, req)
		})

		When("the lookup succeeds", func() {
			It("should return the binding", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["eoaAddress"]).To(Equal(eoaAddress))
				Expect(response["smartAccountAddress"]).To(Equal(smartAddress))
				Expect(response["chainId"]).To(BeNumerically("==", 11155111))

				Expect(fakeBridge.FetchOrCreateAccountCallCount()).To(Equal(1))
				_, argEOA, argChain := fakeBridge.FetchOrCreateAccountArgsForCall(0)
				Expect(argEOA).To(Equal(eoaAddress))
				Expect(argChain).To(Equal(uint64(11155111)))
			})
		})

		When("the eoaAddress parameter is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/smart-account/create?chainId=11155111", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeBridge.FetchOrCreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the chainId parameter is not a number", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/smart-account/create?eoaAddress="+eoaAddress+"&chainId=abc", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("parse chainId parameter"))
			})
		})

		When("the bridge fails unexpectedly", func() {
			BeforeEach(func() {
				fakeBridge.FetchOrCreateAccountReturns(registry.Binding{}, false, fakeErr)
			})

			It("should return 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleCreateAccount", func() {
		var result core.AccountResult

		BeforeEach(func() {
			result = core.AccountResult{
				Binding:       binding,
				Wallet:        core.DetectWalletType("", "Trust Wallet"),
				AlreadyExists: false,
			}
			fakeBridge.CreateAccountReturns(result, nil)

			body := strings.NewReader(`{"eoaAddress":"` + eoaAddress + `","chainId":11155111,"walletName":"Trust Wallet"}`)
			req = httptest.NewRequest("POST", "/api/smart-account/create", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			sh.HandleCreateAccount(w, req)
		})

		When("the account is created", func() {
			It("should return the binding and wallet classification", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["alreadyExists"]).To(BeFalse())

				account, ok := response["account"].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(account["smartAccountAddress"]).To(Equal(smartAddress))

				wallet, ok := response["wallet"].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(wallet["type"]).To(Equal(core.WalletTrust))

				Expect(fakeBridge.CreateAccountCallCount()).To(Equal(1))
				_, argMsg := fakeBridge.CreateAccountArgsForCall(0)
				Expect(argMsg.EOAAddress).To(Equal(eoaAddress))
				Expect(argMsg.WalletName).To(Equal("Trust Wallet"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeBridge.CreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the chain is not supported", func() {
			BeforeEach(func() {
				fakeBridge.CreateAccountReturns(core.AccountResult{}, core.ErrUnsupportedChain)
			})

			It("should return 400 with the domain error", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUnsupportedChain.Error()))
			})
		})
	})

	Describe("HandleGetConvert", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/smart-account/convert?eoaAddress="+eoaAddress+"&chainId=11155111", nil)
			fakeBridge.ConversionStatusReturns(core.ConversionStatus{
				HasGas:                    false,
				HasToken:                  true,
				EOATokenBalance:           big.NewInt(5_000_000),
				SmartAccountTokenBalance:  big.NewInt(0),
				SmartAccountNativeBalance: big.NewInt(0),
				NeedsGasFunding:           true,
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleGetConvert(w, req)
		})

		It("should return the conversion status", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["hasUSDC"]).To(BeTrue())
			Expect(response["needsGasFunding"]).To(BeTrue())
			Expect(response["eoaUSDCBalance"]).To(Equal("5000000"))
		})

		When("the bridge fails unexpectedly", func() {
			BeforeEach(func() {
				fakeBridge.ConversionStatusReturns(core.ConversionStatus{}, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleConvert", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"eoaAddress":"` + eoaAddress + `","chainId":11155111,"amount":"2.5"}`)
			req = httptest.NewRequest("POST", "/api/smart-account/convert", body)
			req.Header.Set("Content-Type", "application/json")

			fakeBridge.PrepareConversionReturns(core.ConversionPlan{
				GasFunded:     true,
				FundingTxHash: common.HexToHash("0xfeed"),
				Amount:        big.NewInt(2_500_000),
				Transfer: core.PreparedTransfer{
					From:     common.HexToAddress(eoaAddress),
					To:       common.HexToAddress("0xcac524bca292aaade2df8a05cc58f0a65b1b3bb9"),
					Value:    big.NewInt(0),
					Data:     []byte{0xa9, 0x05, 0x9c, 0xbb},
					GasLimit: 65000,
					ChainID:  11155111,
				},
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleConvert(w, req)
		})

		When("the conversion is prepared", func() {
			It("should return the unsigned transfer", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["gasFunded"]).To(BeTrue())
				Expect(response["amount"]).To(Equal("2500000"))

				tx, ok := response["transaction"].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(tx["data"]).To(Equal("0xa9059cbb"))
				Expect(tx["value"]).To(Equal("0"))

				Expect(fakeBridge.PrepareConversionCallCount()).To(Equal(1))
				_, argEOA, argChain, argAmount := fakeBridge.PrepareConversionArgsForCall(0)
				Expect(argEOA).To(Equal(eoaAddress))
				Expect(argChain).To(Equal(uint64(11155111)))
				Expect(argAmount).To(Equal("2.5"))
			})
		})

		When("no amount is sent", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"eoaAddress":"` + eoaAddress + `","chainId":11155111}`)
				req = httptest.NewRequest("POST", "/api/smart-account/convert", body)
			})

			It("should pass an empty amount for a full conversion", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, _, argAmount := fakeBridge.PrepareConversionArgsForCall(0)
				Expect(argAmount).To(Equal(""))
			})
		})

		When("the EOA holds no tokens", func() {
			BeforeEach(func() {
				fakeBridge.PrepareConversionReturns(core.ConversionPlan{}, core.ErrNoConvertBalance)
			})

			It("should return 400 with the domain error", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrNoConvertBalance.Error()))
			})
		})

		When("the funder fails", func() {
			BeforeEach(func() {
				fakeBridge.PrepareConversionReturns(core.ConversionPlan{}, fakeErr)
			})

			It("should return 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetWithdraw", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/smart-account/withdraw?eoaAddress="+eoaAddress+"&chainId=11155111", nil)
			fakeBridge.WithdrawalStatusReturns(core.WithdrawalStatus{
				HasGas:                   true,
				HasToken:                 true,
				SmartAccountTokenBalance: big.NewInt(3_000_000),
				CanWithdraw:              true,
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleGetWithdraw(w, req)
		})

		It("should return the withdrawal status", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["canWithdraw"]).To(BeTrue())
			Expect(response["smartAccountUSDCBalance"]).To(Equal("3000000"))
		})
	})

	Describe("HandleWithdraw", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"eoaAddress":"` + eoaAddress + `","chainId":11155111,"withdrawAll":true}`)
			req = httptest.NewRequest("POST", "/api/smart-account/withdraw", body)
			req.Header.Set("Content-Type", "application/json")

			fakeBridge.PrepareWithdrawalReturns(core.WithdrawalPlan{
				Amount: big.NewInt(3_000_000),
				UserOperation: core.UserOperation{
					Sender:               common.HexToAddress(smartAddress),
					Nonce:                big.NewInt(7),
					CallData:             []byte{0xb6, 0x1d, 0x27, 0xf6},
					CallGasLimit:         big.NewInt(65000),
					VerificationGasLimit: big.NewInt(100000),
					PreVerificationGas:   big.NewInt(21000),
					MaxFeePerGas:         big.NewInt(5_000_000_000),
					MaxPriorityFeePerGas: big.NewInt(2_000_000_000),
				},
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleWithdraw(w, req)
		})

		When("the withdrawal is prepared", func() {
			It("should return the unsigned user operation", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["amount"]).To(Equal("3000000"))

				op, ok := response["userOperation"].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(op["sender"]).To(Equal(common.HexToAddress(smartAddress).Hex()))
				Expect(op["nonce"]).To(Equal("7"))
				Expect(op["callData"]).To(Equal("0xb61d27f6"))
				Expect(op["signature"]).To(Equal("0x"))

				Expect(fakeBridge.PrepareWithdrawalCallCount()).To(Equal(1))
				_, argMsg := fakeBridge.PrepareWithdrawalArgsForCall(0)
				Expect(argMsg.WithdrawAll).To(BeTrue())
				Expect(argMsg.Amount).To(Equal(""))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeBridge.PrepareWithdrawalCallCount()).To(Equal(0))
			})
		})

		When("the smart account has no gas", func() {
			BeforeEach(func() {
				fakeBridge.PrepareWithdrawalReturns(core.WithdrawalPlan{}, core.ErrInsufficientGas)
			})

			It("should return 400 with the domain error", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInsufficientGas.Error()))
			})
		})

		When("the bridge fails unexpectedly", func() {
			BeforeEach(func() {
				fakeBridge.PrepareWithdrawalReturns(core.WithdrawalPlan{}, fakeErr)
			})

			It("should return 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})
})
