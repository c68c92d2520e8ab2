// Package flowdelivery manages delivery layer of the transfer flow.
package flowdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-transfer/internal/domain"
	"github.com/go-petr/pet-transfer/internal/flowservice"
	"github.com/go-petr/pet-transfer/internal/middleware"
	"github.com/go-petr/pet-transfer/internal/stepmachine"
	"github.com/go-petr/pet-transfer/pkg/errorspkg"
	"github.com/go-petr/pet-transfer/pkg/tokenpkg"
	"github.com/go-petr/pet-transfer/pkg/web"
)

// Service provides service layer interface needed by flow delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package flowdelivery
type Service interface {
	Create(ctx context.Context, userID string) (flowservice.View, error)
	Get(ctx context.Context, userID, sessionID string) (flowservice.View, error)
	Delete(ctx context.Context, userID, sessionID string) error
	ClearErrors(ctx context.Context, userID, sessionID string) (flowservice.View, error)
	SearchContacts(ctx context.Context, userID, sessionID, key string) ([]domain.RecipientSection, error)
	AddContact(ctx context.Context, userID, sessionID string, arg flowservice.AddContactParams) error
	SearchRecipient(ctx context.Context, userID, sessionID, mobileNumber, accountNumber string) (domain.Recipient, error)
	ListPaymentMethods(ctx context.Context, userID, sessionID string) ([]domain.PaymentMethod, error)
	SetPaymentMethod(ctx context.Context, userID, sessionID, name string) (domain.PaymentMethod, error)
	SearchEBanks(ctx context.Context, userID, sessionID, key string, selectable bool) ([]domain.BankSection, error)
	StartFlow(ctx context.Context, userID, sessionID string, arg flowservice.StartFlowParams) (flowservice.View, error)
	SubmitAmount(ctx context.Context, userID, sessionID string, in stepmachine.AmountInput) (flowservice.View, error)
	SubmitDetails(ctx context.Context, userID, sessionID string, in stepmachine.DetailsInput) (flowservice.View, error)
	Confirm(ctx context.Context, userID, sessionID string) (flowservice.View, error)
	Authorize(ctx context.Context, userID, sessionID, otp string) (flowservice.View, error)
	ResendOtp(ctx context.Context, userID, sessionID string) (flowservice.View, error)
	Back(ctx context.Context, userID, sessionID string) (flowservice.View, error)
	ChangeStep(ctx context.Context, userID, sessionID string, step domain.Step) (flowservice.View, error)
	Receipt(ctx context.Context, userID, sessionID string) (domain.Receipt, error)
	AddRecipientToContacts(ctx context.Context, userID, sessionID string) (flowservice.View, error)
	Done(ctx context.Context, userID, sessionID string) (flowservice.View, error)
}

// Handler facilitates flow delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns flow handler.
func NewHandler(fs Service) *Handler {
	return &Handler{
		service: fs,
	}
}

// Register adds the flow routes to r.
func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions/:id", h.GetSession)
	r.DELETE("/sessions/:id", h.DeleteSession)
	r.POST("/sessions/:id/errors/clear", h.ClearErrors)

	r.GET("/sessions/:id/contacts", h.SearchContacts)
	r.POST("/sessions/:id/contacts", h.AddContact)
	r.POST("/sessions/:id/recipients/search", h.SearchRecipient)
	r.GET("/sessions/:id/payment-methods", h.ListPaymentMethods)
	r.PUT("/sessions/:id/payment-method", h.SetPaymentMethod)
	r.GET("/sessions/:id/banks", h.SearchEBanks)

	r.POST("/sessions/:id/flow", h.StartFlow)
	r.POST("/sessions/:id/flow/amount", h.SubmitAmount)
	r.POST("/sessions/:id/flow/details", h.SubmitDetails)
	r.POST("/sessions/:id/flow/confirm", h.Confirm)
	r.POST("/sessions/:id/flow/authorize", h.Authorize)
	r.POST("/sessions/:id/flow/resend-otp", h.ResendOtp)
	r.POST("/sessions/:id/flow/back", h.Back)
	r.PUT("/sessions/:id/flow/step", h.ChangeStep)
	r.GET("/sessions/:id/flow/receipt", h.Receipt)
	r.POST("/sessions/:id/flow/contact", h.AddRecipientToContacts)
	r.POST("/sessions/:id/flow/done", h.Done)
}

func userID(gctx *gin.Context) string {
	return gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload).UserID
}

// respondError maps err to the status code and writes it.
func respondError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())
	l.Info().Err(err).Send()

	switch {
	case errors.Is(err, domain.ErrSessionOwner):
		gctx.JSON(http.StatusUnauthorized, web.Error(err))
	case
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrExpiredSession),
		errors.Is(err, domain.ErrNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case
		errors.Is(err, domain.ErrNoActiveFlow),
		errors.Is(err, domain.ErrStepMismatch),
		errors.Is(err, domain.ErrNoActivePayment),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDetails),
		errors.Is(err, domain.ErrProviderInactive),
		errors.Is(err, domain.ErrDomainRejected):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrTransport):
		var me *domain.MessageError
		if errors.As(err, &me) {
			gctx.JSON(http.StatusBadGateway, web.Error(err))
			return
		}

		gctx.JSON(http.StatusBadGateway, web.Error(domain.ErrTransport))
	default:
		l.Error().Err(err).Msg("unexpected error")
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func respondView(gctx *gin.Context, status int, v flowservice.View, err error) {
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(status, web.Response{Data: newSessionView(v)})
}

// CreateSession handles http request to start a flow session.
func (h *Handler) CreateSession(gctx *gin.Context) {
	v, err := h.service.Create(gctx.Request.Context(), userID(gctx))
	respondView(gctx, http.StatusCreated, v, err)
}

// GetSession handles http request to read a session.
func (h *Handler) GetSession(gctx *gin.Context) {
	v, err := h.service.Get(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	respondView(gctx, http.StatusOK, v, err)
}

// DeleteSession handles http request to close a session.
func (h *Handler) DeleteSession(gctx *gin.Context) {
	if err := h.service.Delete(gctx.Request.Context(), userID(gctx), gctx.Param("id")); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

// ClearErrors handles http request to reset the session errors.
func (h *Handler) ClearErrors(gctx *gin.Context) {
	v, err := h.service.ClearErrors(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	respondView(gctx, http.StatusOK, v, err)
}

type searchRequest struct {
	Search     string `form:"search"`
	Selectable bool   `form:"selectable"`
}

// SearchContacts handles http request to list the grouped contacts.
func (h *Handler) SearchContacts(gctx *gin.Context) {
	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	sections, err := h.service.SearchContacts(gctx.Request.Context(), userID(gctx), gctx.Param("id"), req.Search)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: sections})
}

type addContactRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
	AccountNumber    string `json:"account_number" binding:"required"`
	DisplayName      string `json:"display_name" binding:"required"`
}

// AddContact handles http request to save a contact.
func (h *Handler) AddContact(gctx *gin.Context) {
	var req addContactRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	err := h.service.AddContact(gctx.Request.Context(), userID(gctx), gctx.Param("id"), flowservice.AddContactParams{
		PaymentReference: req.PaymentReference,
		AccountNumber:    req.AccountNumber,
		DisplayName:      req.DisplayName,
	})
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

type searchRecipientRequest struct {
	MobileNumber  string `json:"mobile_number" binding:"required_without=AccountNumber"`
	AccountNumber string `json:"account_number" binding:"required_without=MobileNumber"`
}

// SearchRecipient handles http request to look a recipient up.
func (h *Handler) SearchRecipient(gctx *gin.Context) {
	var req searchRecipientRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	r, err := h.service.SearchRecipient(gctx.Request.Context(), userID(gctx), gctx.Param("id"), req.MobileNumber, req.AccountNumber)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: r})
}

// ListPaymentMethods handles http request to list the payment methods.
func (h *Handler) ListPaymentMethods(gctx *gin.Context) {
	methods, err := h.service.ListPaymentMethods(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: methods})
}

type setPaymentMethodRequest struct {
	Name string `json:"name" binding:"required"`
}

// SetPaymentMethod handles http request to choose a payment method.
func (h *Handler) SetPaymentMethod(gctx *gin.Context) {
	var req setPaymentMethodRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	m, err := h.service.SetPaymentMethod(gctx.Request.Context(), userID(gctx), gctx.Param("id"), req.Name)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: m})
}

// SearchEBanks handles http request to list the grouped banks.
func (h *Handler) SearchEBanks(gctx *gin.Context) {
	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	sections, err := h.service.SearchEBanks(gctx.Request.Context(), userID(gctx), gctx.Param("id"), req.Search, req.Selectable)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: sections})
}

type startFlowRequest struct {
	BankID           string            `json:"bank_id"`
	Recipient        *domain.Recipient `json:"recipient"`
	IsFromContact    bool              `json:"is_from_contact"`
	UserAccountID    string            `json:"user_account_id" binding:"required"`
	AvailableBalance *decimal.Decimal  `json:"available_balance"`
	CurrencyCode     string            `json:"currency_code" binding:"omitempty,currency"`
}

// StartFlow handles http request to start a transfer flow.
func (h *Handler) StartFlow(gctx *gin.Context) {
	var req startFlowRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	arg := flowservice.StartFlowParams{
		BankID:        req.BankID,
		Recipient:     req.Recipient,
		IsFromContact: req.IsFromContact,
		UserAccountID: req.UserAccountID,
		CurrencyCode:  req.CurrencyCode,
	}

	if req.AvailableBalance != nil {
		arg.AvailableBalance = decimal.NewNullDecimal(*req.AvailableBalance)
	}

	v, err := h.service.StartFlow(gctx.Request.Context(), userID(gctx), gctx.Param("id"), arg)
	respondView(gctx, http.StatusCreated, v, err)
}

type amountRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Provider string `json:"provider"`
	Note     string `json:"note" binding:"max=140"`
}

// SubmitAmount handles http request to submit the amount step.
func (h *Handler) SubmitAmount(gctx *gin.Context) {
	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		badRequest(gctx, domain.ErrInvalidAmount)
		return
	}

	v, err := h.service.SubmitAmount(gctx.Request.Context(), userID(gctx), gctx.Param("id"), stepmachine.AmountInput{
		Amount:   amount,
		Provider: req.Provider,
		Note:     req.Note,
	})
	respondView(gctx, http.StatusOK, v, err)
}

type detailsRequest struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	AccountID     string `json:"account_id"`
	Purpose       string `json:"purpose" binding:"omitempty,purpose"`
	OtherPurpose  string `json:"other_purpose"`
}

// SubmitDetails handles http request to submit the recipient details step.
func (h *Handler) SubmitDetails(gctx *gin.Context) {
	var req detailsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	v, err := h.service.SubmitDetails(gctx.Request.Context(), userID(gctx), gctx.Param("id"), stepmachine.DetailsInput{
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		AccountID:     req.AccountID,
		Purpose:       req.Purpose,
		OtherPurpose:  req.OtherPurpose,
	})
	respondView(gctx, http.StatusOK, v, err)
}

// Confirm handles http request to initiate the reviewed transfer.
func (h *Handler) Confirm(gctx *gin.Context) {
	v, err := h.service.Confirm(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	respondView(gctx, http.StatusOK, v, err)
}

type authorizeRequest struct {
	OTP string `json:"otp" binding:"required,otp"`
}

// Authorize handles http request to authorize the transfer.
func (h *Handler) Authorize(gctx *gin.Context) {
	var req authorizeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	v, err := h.service.Authorize(gctx.Request.Context(), userID(gctx), gctx.Param("id"), req.OTP)
	respondView(gctx, http.StatusOK, v, err)
}

// ResendOtp handles http request to send a new one-time code.
func (h *Handler) ResendOtp(gctx *gin.Context) {
	v, err := h.service.ResendOtp(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	respondView(gctx, http.StatusOK, v, err)
}

// Back handles http request to go one step back.
func (h *Handler) Back(gctx *gin.Context) {
	v, err := h.service.Back(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	respondView(gctx, http.StatusOK, v, err)
}

type changeStepRequest struct {
	Step string `json:"step" binding:"required"`
}

// ChangeStep handles http request to jump to a step.
func (h *Handler) ChangeStep(gctx *gin.Context) {
	var req changeStepRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	step, err := domain.ParseStep(req.Step)
	if err != nil {
		badRequest(gctx, err)
		return
	}

	v, err := h.service.ChangeStep(gctx.Request.Context(), userID(gctx), gctx.Param("id"), step)
	respondView(gctx, http.StatusOK, v, err)
}

// Receipt handles http request to read the transfer receipt.
func (h *Handler) Receipt(gctx *gin.Context) {
	r, err := h.service.Receipt(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: r})
}

// AddRecipientToContacts handles http request to save the transfer recipient.
func (h *Handler) AddRecipientToContacts(gctx *gin.Context) {
	v, err := h.service.AddRecipientToContacts(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	respondView(gctx, http.StatusOK, v, err)
}

// Done handles http request to finish the flow.
func (h *Handler) Done(gctx *gin.Context) {
	v, err := h.service.Done(gctx.Request.Context(), userID(gctx), gctx.Param("id"))
	respondView(gctx, http.StatusOK, v, err)
}
