package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"accountbridge/internal/config"
	"accountbridge/internal/core"
	"accountbridge/internal/db"
	"accountbridge/internal/ethereum"
	"accountbridge/internal/http/handler"
	"accountbridge/internal/http/handler/middleware"
	"accountbridge/internal/http/payload"
	"accountbridge/internal/http/server"
	"accountbridge/internal/registry"
	"accountbridge/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("accountbridge", zapcore.InfoLevel)

	appConfig, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(appConfig.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// registry
	accountRegistry := registry.NewAccountRegistry(dbConn)
	if err := accountRegistry.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(appConfig.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}

	nodeService := ethereum.NewNodeService(client, ethereum.NodeConfig{
		FactoryAddress:    appConfig.FactoryAddress,
		TokenAddress:      appConfig.TokenAddress,
		EntryPointAddress: appConfig.EntryPointAddress,
	})

	gasFunder, err := ethereum.NewGasFunder(logger, client, appConfig.FunderPrivateKey, appConfig.ChainID)
	if err != nil {
		logger.Errorw("failed to create gas funder", "error", err)
		return err
	}

	// bridge
	bridge := core.NewBridge(
		logger,
		accountRegistry,
		nodeService,
		gasFunder,
		core.Config{
			ChainID:          appConfig.ChainID,
			TokenAddress:     appConfig.TokenAddress,
			TokenDecimals:    appConfig.TokenDecimals,
			TransferGasLimit: appConfig.TransferGasLimit,
			FundingAmount:    appConfig.FundingAmount,
			SettleDelay:      appConfig.SettleDelay,
		})

	// handler
	accountHlr := handler.NewSmartAccountHandler(
		logger,
		payload.DecodeValidator{},
		bridge)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.GetAccount, accountHlr.HandleGetAccount)
	mux.HandleFunc(handler.CreateAccount, accountHlr.HandleCreateAccount)
	mux.HandleFunc(handler.GetConvert, accountHlr.HandleGetConvert)
	mux.HandleFunc(handler.Convert, accountHlr.HandleConvert)
	mux.HandleFunc(handler.GetWithdraw, accountHlr.HandleGetWithdraw)
	mux.HandleFunc(handler.Withdraw, accountHlr.HandleWithdraw)

	srv := server.NewHTTP(logger, hdlr, appConfig.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
