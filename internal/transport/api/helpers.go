package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/transport/api/middlewares"
)

func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}

// abortWithServiceErr переводит ошибку сервисного слоя в http статус и машиночитаемый kind.
// Чужая карта намеренно маскируется под not_found.
func abortWithServiceErr(c *gin.Context, err error) {
	type mapping struct {
		target error
		status int
		kind   string
	}
	mappings := []mapping{
		{domain.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{domain.ErrOwnerConflict, http.StatusNotFound, "not_found"},
		{domain.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
		{domain.ErrNotEnoughBalance, http.StatusBadRequest, "insufficient_funds"},
		{domain.ErrUnbalancedSplit, http.StatusBadRequest, "unbalanced_split"},
		{domain.ErrTypeSignMismatch, http.StatusBadRequest, "type_sign_mismatch"},
		{domain.ErrNoParticipants, http.StatusBadRequest, "validation_error"},
		{domain.ErrIdempotencyReplay, http.StatusConflict, "idempotency_replay"},
		{domain.ErrDuplicateKey, http.StatusConflict, "duplicate"},
	}

	for _, m := range mappings {
		if errors.Is(err, m.target) {
			c.AbortWithStatusJSON(m.status, gin.H{"error": m.target.Error(), "kind": m.kind})
			return
		}
	}

	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

// validIdempotencyKey ключ либо не передан, либо обязан быть валидным uuid.
func validIdempotencyKey(key string) bool {
	if key == "" {
		return true
	}
	_, err := uuid.Parse(key)
	return err == nil
}

type CardResponse struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"user_id"`
	Number  string  `json:"number"`
	Holder  string  `json:"holder"`
	Expiry  string  `json:"expiry"`
	Balance float64 `json:"balance"`
	Design  string  `json:"design"`
}

type TransactionResponse struct {
	ID     int64   `json:"id"`
	CardID int64   `json:"card_id"`
	Name   string  `json:"name"`
	Time   string  `json:"time"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

func convertCard(card *domain.Card) CardResponse {
	return CardResponse{
		ID:      card.ID,
		UserID:  card.UserID,
		Number:  card.Number,
		Holder:  card.Holder,
		Expiry:  card.Expiry,
		Balance: card.Balance.InexactFloat64(),
		Design:  card.Design,
	}
}

func convertTransaction(transaction *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:     transaction.ID,
		CardID: transaction.CardID,
		Name:   transaction.Name,
		Time:   transaction.CreatedAt.Format(time.RFC3339),
		Amount: transaction.Amount.InexactFloat64(),
		Type:   string(transaction.Type),
	}
}
