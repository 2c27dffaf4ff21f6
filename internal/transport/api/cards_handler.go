package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/eazypay/internal/service"
)

type CardsHandler struct {
	cardSvs   CardServicer
	ledgerSvs LedgerServicer
}

func NewCardsHandler(cardSvs CardServicer, ledgerSvs LedgerServicer) *CardsHandler {
	return &CardsHandler{
		cardSvs:   cardSvs,
		ledgerSvs: ledgerSvs,
	}
}

// Index GET RouteGroup + CardsRoute. Карты текущего юзера в порядке добавления.
func (h *CardsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cards, err := h.cardSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]CardResponse, len(cards))
	for i, card := range cards {
		response[i] = convertCard(&card)
	}
	c.JSON(http.StatusOK, response)
}

type CreateCardParams struct {
	Number string `binding:"required,max=32" json:"number"`
	Holder string `binding:"required,max=64" json:"holder"`
	Expiry string `binding:"required,len=5"  json:"expiry"`
	Design string `binding:"max=50"          json:"design"`
}

// Create POST RouteGroup + CardsRoute. Новая карта с нулевым балансом.
func (h *CardsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateCardParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, err := h.cardSvs.AddCard(reqCtx, currentUserID, service.AddCardArgs{
		Number: params.Number,
		Holder: params.Holder,
		Expiry: params.Expiry,
		Design: params.Design,
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, convertCard(card))
}

// Delete DELETE RouteGroup + CardsRoute + /:id.
func (h *CardsHandler) Delete(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	cardID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "card not found", "kind": "not_found"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.cardSvs.DeleteCard(reqCtx, currentUserID, cardID); err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "card deleted"})
}

type TopUpParams struct {
	CardID         int64           `binding:"required" json:"card_id"`
	Amount         decimal.Decimal `binding:"required" json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// TopUp POST RouteGroup + TopUpRoute.
func (h *CardsHandler) TopUp(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TopUpParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if !validIdempotencyKey(params.IdempotencyKey) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "idempotency_key must be a uuid", "kind": "validation_error"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, transaction, err := h.ledgerSvs.TopUp(reqCtx, currentUserID, params.CardID, params.Amount, params.IdempotencyKey)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"updated_card": convertCard(card),
		"transaction":  convertTransaction(transaction),
	})
}

type DeductParams struct {
	CardID         int64           `binding:"required" json:"card_id"`
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// Deduct POST RouteGroup + DeductRoute. Гарантированное списание без записи журнала:
// запись добавляет вызывающий сценарий.
func (h *CardsHandler) Deduct(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params DeductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if !validIdempotencyKey(params.IdempotencyKey) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "idempotency_key must be a uuid", "kind": "validation_error"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, err := h.ledgerSvs.Deduct(reqCtx, currentUserID, params.CardID, params.Amount, params.IdempotencyKey)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"updated_card": convertCard(card),
	})
}

type TransferParams struct {
	CardID         int64           `binding:"required" json:"card_id"`
	Recipient      string          `binding:"required,max=64" json:"recipient"`
	Amount         decimal.Decimal `binding:"required" json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// Transfer POST RouteGroup + TransferRoute. Перевод контакту вне системы:
// списание + запись "Sent to ...", зачисления второй стороне нет.
func (h *CardsHandler) Transfer(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if !validIdempotencyKey(params.IdempotencyKey) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "idempotency_key must be a uuid", "kind": "validation_error"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, transaction, err := h.ledgerSvs.Transfer(
		reqCtx, currentUserID, params.CardID, params.Recipient, params.Amount, params.IdempotencyKey)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"updated_card": convertCard(card),
		"transaction":  convertTransaction(transaction),
	})
}

type SplitPaymentAllocation struct {
	CardID int64           `binding:"required" json:"card_id"`
	Amount decimal.Decimal `json:"amount"`
}

type SplitPaymentParams struct {
	Item        string                   `binding:"required,max=255"      json:"item"`
	Total       decimal.Decimal          `binding:"required"              json:"total"`
	Allocations []SplitPaymentAllocation `binding:"required,min=1,dive"   json:"allocations"`
}

// SplitPayment POST RouteGroup + SplitPaymentRoute. Оплата покупки с нескольких карт
// одной транзакцией: либо проходят все списания, либо ни одного.
func (h *CardsHandler) SplitPayment(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params SplitPaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	allocations := make([]service.Allocation, len(params.Allocations))
	for i, allocation := range params.Allocations {
		allocations[i] = service.Allocation{
			CardID: allocation.CardID,
			Amount: allocation.Amount,
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cards, err := h.ledgerSvs.SplitPayment(reqCtx, currentUserID, params.Item, params.Total, allocations)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]CardResponse, len(cards))
	for i, card := range cards {
		response[i] = convertCard(&card)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated_cards": response})
}
