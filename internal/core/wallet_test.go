package core_test

import (
	"accountbridge/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DetectWalletType", func() {
	DescribeTable("classification",
		func(userAgent, walletName, expectedType string, expectedSupport bool) {
			wallet := core.DetectWalletType(userAgent, walletName)
			Expect(wallet.Type).To(Equal(expectedType))
			Expect(wallet.SupportsSmartAccounts).To(Equal(expectedSupport))
		},
		Entry("metamask by name", "", "MetaMask", core.WalletMetaMask, true),
		Entry("binance by name", "", "Binance Wallet", core.WalletBinance, false),
		Entry("trust by name", "", "Trust Wallet", core.WalletTrust, false),
		Entry("walletconnect by name", "", "WalletConnect", core.WalletWalletConnect, false),
		Entry("trust by user agent", "Mozilla/5.0 TrustWallet/8.1", "", core.WalletTrust, false),
		Entry("binance by user agent", "Mozilla/5.0 Binance/2.0", "", core.WalletBinance, false),
		Entry("name wins over user agent", "Mozilla/5.0 TrustWallet/8.1", "MetaMask", core.WalletMetaMask, true),
		Entry("nothing recognized", "Mozilla/5.0", "", core.WalletUnknown, false),
	)

	It("should name the unknown wallet", func() {
		wallet := core.DetectWalletType("", "")
		Expect(wallet.Name).To(Equal("Unknown Wallet"))
	})
})
