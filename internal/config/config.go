package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey       = "API_PORT"
	ethNodeEnvKey       = "ETH_NODE_URL"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	factoryAddrEnvKey   = "FACTORY_ADDRESS"
	tokenAddrEnvKey     = "TOKEN_ADDRESS"
	entryPointEnvKey    = "ENTRYPOINT_ADDRESS"
	tokenDecimalsEnvKey = "TOKEN_DECIMALS"
	transferGasEnvKey   = "TRANSFER_GAS_LIMIT"
	fundingAmountEnvKey = "GAS_FUNDING_AMOUNT_WEI"
	settleDelayEnvKey   = "GAS_SETTLE_DELAY"
	funderKeyEnvKey     = "SERVICE_ACCOUNT_PRIVATE_KEY"
)

// SupportedChainID is the only network the service operates on (Sepolia).
const SupportedChainID uint64 = 11155111

const (
	defaultFactoryAddress    = "0x9406Cc6185a346906296840746125a0E44976454"
	defaultTokenAddress      = "0xcac524bca292aaade2df8a05cc58f0a65b1b3bb9"
	defaultEntryPointAddress = "0x5FF137D4b0FDCD49DcA30c7CF57E578a026d2789"
	defaultTokenDecimals     = 6
	defaultTransferGasLimit  = 65000
	defaultFundingAmountWei  = "1000000000000000" // 0.001 ETH
	defaultSettleDelay       = 3 * time.Second
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string

	ChainID           uint64
	FactoryAddress    common.Address
	TokenAddress      common.Address
	EntryPointAddress common.Address
	TokenDecimals     int

	TransferGasLimit uint64
	FundingAmount    *big.Int
	SettleDelay      time.Duration

	// Hex-encoded custodial key used for gas funding. Empty means gas funding
	// is disabled and funding requests fail closed.
	FunderPrivateKey string
}

func NewApp() (App, error) {
	// local development convenience; a missing .env is not an error
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	factoryAddr, err := addressEnv(factoryAddrEnvKey, defaultFactoryAddress)
	if err != nil {
		return App{}, err
	}

	tokenAddr, err := addressEnv(tokenAddrEnvKey, defaultTokenAddress)
	if err != nil {
		return App{}, err
	}

	entryPointAddr, err := addressEnv(entryPointEnvKey, defaultEntryPointAddress)
	if err != nil {
		return App{}, err
	}

	tokenDecimals, err := intEnv(tokenDecimalsEnvKey, defaultTokenDecimals)
	if err != nil {
		return App{}, err
	}

	transferGasLimit, err := intEnv(transferGasEnvKey, defaultTransferGasLimit)
	if err != nil {
		return App{}, err
	}

	fundingAmount, err := bigIntEnv(fundingAmountEnvKey, defaultFundingAmountWei)
	if err != nil {
		return App{}, err
	}

	settleDelay := defaultSettleDelay
	if raw, ok := os.LookupEnv(settleDelayEnvKey); ok {
		settleDelay, err = time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("%w: %s: %s", errEnvVarInvalid, settleDelayEnvKey, err)
		}
	}

	return App{
		Port:              port,
		NodeURL:           nodeURL,
		DBConnectionURL:   dbConn,
		ChainID:           SupportedChainID,
		FactoryAddress:    factoryAddr,
		TokenAddress:      tokenAddr,
		EntryPointAddress: entryPointAddr,
		TokenDecimals:     tokenDecimals,
		TransferGasLimit:  uint64(transferGasLimit),
		FundingAmount:     fundingAmount,
		SettleDelay:       settleDelay,
		FunderPrivateKey:  os.Getenv(funderKeyEnvKey),
	}, nil
}

func addressEnv(key, fallback string) (common.Address, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		raw = fallback
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %s: not a hex address", errEnvVarInvalid, key)
	}
	return common.HexToAddress(raw), nil
}

func intEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s", errEnvVarInvalid, key, err)
	}
	return val, nil
}

func bigIntEnv(key, fallback string) (*big.Int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		raw = fallback
	}
	val, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s: not a decimal integer", errEnvVarInvalid, key)
	}
	return val, nil
}
