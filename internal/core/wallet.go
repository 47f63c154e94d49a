package core

import "strings"

// WalletType classifies the connecting wallet. Wallets without native
// smart-account support are the reason this service exists: their users get a
// derived smart account managed through the bridge.
type WalletType struct {
	Type                  string `json:"type"`
	SupportsSmartAccounts bool   `json:"supportsSmartAccounts"`
	Name                  string `json:"name"`
}

const (
	WalletMetaMask      = "metamask"
	WalletBinance       = "binance"
	WalletTrust         = "trust"
	WalletWalletConnect = "walletconnect"
	WalletUnknown       = "unknown"
)

// DetectWalletType classifies a wallet by its reported name, falling back to
// user-agent sniffing for in-app browsers.
func DetectWalletType(userAgent, walletName string) WalletType {
	name := strings.ToLower(walletName)

	switch {
	case strings.Contains(name, "metamask"):
		// MetaMask supports smart accounts via extensions
		return WalletType{Type: WalletMetaMask, SupportsSmartAccounts: true, Name: "MetaMask"}
	case strings.Contains(name, "binance"):
		return WalletType{Type: WalletBinance, SupportsSmartAccounts: false, Name: "Binance Wallet"}
	case strings.Contains(name, "trust"):
		return WalletType{Type: WalletTrust, SupportsSmartAccounts: false, Name: "Trust Wallet"}
	case strings.Contains(name, "walletconnect"):
		// depends on the wallet behind the connection
		return WalletType{Type: WalletWalletConnect, SupportsSmartAccounts: false, Name: "WalletConnect"}
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "trustwallet") {
		return WalletType{Type: WalletTrust, SupportsSmartAccounts: false, Name: "Trust Wallet"}
	}
	if strings.Contains(ua, "binance") {
		return WalletType{Type: WalletBinance, SupportsSmartAccounts: false, Name: "Binance Wallet"}
	}

	return WalletType{Type: WalletUnknown, SupportsSmartAccounts: false, Name: "Unknown Wallet"}
}
