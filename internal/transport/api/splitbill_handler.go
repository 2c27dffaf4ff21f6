package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/eazypay/internal/service"
)

type SplitBillHandler struct {
	ledgerSvs LedgerServicer
}

func NewSplitBillHandler(ledgerSvs LedgerServicer) *SplitBillHandler {
	return &SplitBillHandler{
		ledgerSvs: ledgerSvs,
	}
}

type SplitBillParticipant struct {
	Name  string `binding:"required,max=64"    json:"name"`
	Email string `binding:"required,email"     json:"email"`
}

type SplitBillParams struct {
	CardID       int64                  `binding:"required"            json:"card_id"`
	Amount       decimal.Decimal        `binding:"required"            json:"amount"`
	Payer        string                 `binding:"required,max=64"     json:"payer"`
	PayerEmail   string                 `binding:"omitempty,email"     json:"payer_email"`
	Message      string                 `binding:"max=255"             json:"message"`
	Participants []SplitBillParticipant `binding:"required,min=1,dive" json:"participants"`
}

type DeliveryResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// Create POST RouteGroup + SplitBillRoute. Списывает всю сумму с карты плательщика
// и рассылает участникам их долю с QR-кодом. Списание финально даже при сбоях доставки:
// по каждому участнику возвращается отдельный результат.
func (h *SplitBillHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params SplitBillParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	participants := make([]service.Participant, len(params.Participants))
	for i, participant := range params.Participants {
		participants[i] = service.Participant{
			Name:  participant.Name,
			Email: participant.Email,
		}
	}

	// таймаут шире обычного: после коммита идет рассылка писем.
	reqCtx, cancel := context.WithTimeout(c, NotifyServiceTimeout)
	defer cancel()

	result, err := h.ledgerSvs.SplitBill(reqCtx, currentUserID, service.SplitBillArgs{
		CardID:       params.CardID,
		Amount:       params.Amount,
		Payer:        params.Payer,
		PayerEmail:   params.PayerEmail,
		Message:      params.Message,
		Participants: participants,
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	deliveries := make([]DeliveryResponse, len(result.Deliveries))
	for i, delivery := range result.Deliveries {
		response := DeliveryResponse{
			Name:  delivery.Participant.Name,
			Email: delivery.Participant.Email,
			Sent:  delivery.Err == nil,
		}
		if delivery.Err != nil {
			response.Error = delivery.Err.Error()
		}
		deliveries[i] = response
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"updated_card": convertCard(result.Card),
		"transaction":  convertTransaction(result.Transaction),
		"share":        result.Share.InexactFloat64(),
		"deliveries":   deliveries,
	})
}
