package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"accountbridge/internal/core"
	"accountbridge/internal/http/handler/middleware"
	"accountbridge/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetAccount    = "GET /api/smart-account/create"
	CreateAccount = "POST /api/smart-account/create"
	GetConvert    = "GET /api/smart-account/convert"
	Convert       = "POST /api/smart-account/convert"
	GetWithdraw   = "GET /api/smart-account/withdraw"
	Withdraw      = "POST /api/smart-account/withdraw"
)

type SmartAccountHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	bridge           BridgeService
}

func NewSmartAccountHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, bridgeService BridgeService) *SmartAccountHandler {
	return &SmartAccountHandler{
		logs:             logger,
		requestValidator: requestValidator,
		bridge:           bridgeService,
	}
}

// HandleGetAccount returns the smart account bound to the EOA in the query,
// deriving and storing the binding on first sight.
func (h *SmartAccountHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query, err := h.statusQuery(r)
	if err != nil {
		h.respondBadRequest(w, "Could not resolve smart account", err, GetAccount, requestId)
		return
	}

	binding, created, err := h.bridge.FetchOrCreateAccount(r.Context(), query.EOAAddress, query.ChainID)
	if err != nil {
		h.respondError(w, "Could not resolve smart account", err, GetAccount, requestId)
		return
	}

	if created {
		h.logs.Infow("smart account binding created",
			"eoa", binding.EOAAddress,
			"smart_account", binding.SmartAccountAddress,
			"handler", GetAccount,
			"request_id", requestId)
	}

	h.respond(w, payload.NewAccountResponse(binding), http.StatusOK, requestId)
}

func (h *SmartAccountHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateAccountRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, "Could not create smart account", err, CreateAccount, requestId)
		return
	}

	result, err := h.bridge.CreateAccount(r.Context(), req.ToMessage())
	if err != nil {
		h.respondError(w, "Could not create smart account", err, CreateAccount, requestId)
		return
	}

	h.logs.Infow("smart account resolved",
		"eoa", result.Binding.EOAAddress,
		"smart_account", result.Binding.SmartAccountAddress,
		"wallet", result.Wallet.Type,
		"already_exists", result.AlreadyExists,
		"handler", CreateAccount,
		"request_id", requestId)

	h.respond(w, payload.NewCreateAccountResponse(result), http.StatusOK, requestId)
}

func (h *SmartAccountHandler) HandleGetConvert(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query, err := h.statusQuery(r)
	if err != nil {
		h.respondBadRequest(w, "Could not get conversion status", err, GetConvert, requestId)
		return
	}

	status, err := h.bridge.ConversionStatus(r.Context(), query.EOAAddress, query.ChainID)
	if err != nil {
		h.respondError(w, "Could not get conversion status", err, GetConvert, requestId)
		return
	}

	h.respond(w, payload.NewConversionStatusResponse(status), http.StatusOK, requestId)
}

func (h *SmartAccountHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ConvertRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, "Could not prepare conversion", err, Convert, requestId)
		return
	}

	plan, err := h.bridge.PrepareConversion(r.Context(), req.EOAAddress, req.ChainID, req.Amount.String())
	if err != nil {
		h.respondError(w, "Could not prepare conversion", err, Convert, requestId)
		return
	}

	h.logs.Infow("conversion prepared",
		"eoa", req.EOAAddress,
		"amount", plan.Amount.String(),
		"gas_funded", plan.GasFunded,
		"handler", Convert,
		"request_id", requestId)

	h.respond(w, payload.NewConversionPlanResponse(plan), http.StatusOK, requestId)
}

func (h *SmartAccountHandler) HandleGetWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query, err := h.statusQuery(r)
	if err != nil {
		h.respondBadRequest(w, "Could not get withdrawal status", err, GetWithdraw, requestId)
		return
	}

	status, err := h.bridge.WithdrawalStatus(r.Context(), query.EOAAddress, query.ChainID)
	if err != nil {
		h.respondError(w, "Could not get withdrawal status", err, GetWithdraw, requestId)
		return
	}

	h.respond(w, payload.NewWithdrawalStatusResponse(status), http.StatusOK, requestId)
}

func (h *SmartAccountHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.WithdrawRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, "Could not prepare withdrawal", err, Withdraw, requestId)
		return
	}

	plan, err := h.bridge.PrepareWithdrawal(r.Context(), req.ToMessage())
	if err != nil {
		h.respondError(w, "Could not prepare withdrawal", err, Withdraw, requestId)
		return
	}

	h.logs.Infow("withdrawal prepared",
		"eoa", req.EOAAddress,
		"amount", plan.Amount.String(),
		"handler", Withdraw,
		"request_id", requestId)

	h.respond(w, payload.NewWithdrawalPlanResponse(plan), http.StatusOK, requestId)
}

func (h *SmartAccountHandler) statusQuery(r *http.Request) (payload.StatusQuery, error) {
	values := r.URL.Query()

	chainID := uint64(0)
	if raw := values.Get("chainId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return payload.StatusQuery{}, fmt.Errorf("parse chainId parameter: %w", err)
		}
		chainID = parsed
	}

	query := payload.StatusQuery{
		EOAAddress: values.Get("eoaAddress"),
		ChainID:    chainID,
	}
	if err := query.Validate(); err != nil {
		return payload.StatusQuery{}, fmt.Errorf("validate query parameters: %w", err)
	}

	return query, nil
}

func (h *SmartAccountHandler) respondBadRequest(w http.ResponseWriter, message string, err error, handlerName, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

// respondError maps domain errors onto HTTP codes. Client mistakes carry the
// sentinel text back; anything else stays a generic 500 with the detail only
// in the logs.
func (h *SmartAccountHandler) respondError(w http.ResponseWriter, message string, err error, handlerName, requestId string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError

	if isClientError(err) {
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	} else {
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func isClientError(err error) bool {
	clientErrors := []error{
		core.ErrUnsupportedChain,
		core.ErrInvalidAddress,
		core.ErrInvalidAmount,
		core.ErrAmountRequired,
		core.ErrAmountExceedsBalance,
		core.ErrNoConvertBalance,
		core.ErrNoWithdrawBalance,
		core.ErrInsufficientGas,
	}
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			return true
		}
	}
	return false
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *SmartAccountHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
