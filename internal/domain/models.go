package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
}

type Card struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Number    string
	Holder    string
	Expiry    string
	Balance   decimal.Decimal
	Design    string
}

// Transaction неизменяемая запись журнала. Balance карты всегда равен сумме
// amount всех её транзакций.
type Transaction struct {
	ID        int64
	CreatedAt time.Time
	CardID    int64
	Name      string
	Amount    decimal.Decimal
	Type      TransactionType
}
