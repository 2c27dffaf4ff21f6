package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/service"
)

type TransactionsHandler struct {
	ledgerSvs LedgerServicer
}

func NewTransactionsHandler(ledgerSvs LedgerServicer) *TransactionsHandler {
	return &TransactionsHandler{
		ledgerSvs: ledgerSvs,
	}
}

// Index GET RouteGroup + TransactionsRoute. История по всем картам юзера, новые сверху.
func (h *TransactionsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.ledgerSvs.GetTransactionsByUser(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = convertTransaction(&transaction)
	}
	c.JSON(http.StatusOK, response)
}

type CreateTransactionParams struct {
	CardID int64           `binding:"required"                      json:"card_id"`
	Name   string          `binding:"required,max=255"              json:"name"`
	Amount decimal.Decimal `binding:"required"                      json:"amount"`
	Type   string          `binding:"required,oneof=income expense" json:"type"`
}

// Create POST RouteGroup + TransactionsRoute. Помеченная операция: дельта баланса
// и запись журнала применяются вместе.
func (h *TransactionsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, transaction, err := h.ledgerSvs.RecordTransaction(reqCtx, currentUserID, service.RecordTransactionArgs{
		CardID: params.CardID,
		Name:   params.Name,
		Amount: params.Amount,
		Type:   domain.TransactionType(params.Type),
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"updated_card": convertCard(card),
		"transaction":  convertTransaction(transaction),
	})
}
