package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

const (
	topUpTransactionName     = "Top-up"
	splitBillTransactionName = "Split Bill Payment"
)

// LedgerService ядро бизнес-логики: все операции, меняющие баланс карты.
// Каждая операция выполняется внутри одной uow-транзакции: изменение баланса и запись
// журнала либо применяются вместе, либо не применяются вовсе.
type LedgerService struct {
	uow             uow.UOW
	cardRepo        CardRepository
	transactionRepo TransactionRepository
	notifier        Notifier
}

func NewLedgerService(u uow.UOW, notifier Notifier) (*LedgerService, error) {
	cardRepo, cardRepoErr := uow.GetRepositoryAs[CardRepository](u, uow.RepositoryName(repoargs.CardRepoName))
	if cardRepoErr != nil {
		return nil, cardRepoErr
	}
	transactionRepo, transRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, transRepoErr
	}
	return &LedgerService{
		uow:             u,
		cardRepo:        cardRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}, nil
}

// TopUp пополняет карту и пишет приходную транзакцию. Требует amount > 0.
func (s *LedgerService) TopUp(
	ctx context.Context,
	userID, cardID int64,
	amount decimal.Decimal,
	idempotencyKey string,
) (*domain.Card, *domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, nil, domain.ErrInvalidAmount
	}

	var card *domain.Card
	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := s.checkOwnership(c, tx, userID, cardID); err != nil {
			return err
		}
		if err := s.registerIdempotencyKey(c, tx, idempotencyKey, cardID, "topup"); err != nil {
			return err
		}

		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}
		var deltaErr error
		card, deltaErr = cardRepo.ApplyBalanceDelta(c, repoargs.ApplyBalanceDelta{
			CardID: cardID,
			Delta:  amount,
			Guard:  domain.GuardNone,
		})
		if deltaErr != nil {
			return deltaErr //nolint:wrapcheck
		}

		var transErr error
		transaction, transErr = s.appendTransaction(c, tx, repoargs.CreateTransaction{
			CardID: cardID,
			Name:   topUpTransactionName,
			Amount: amount,
			Type:   domain.TransactionIncome,
		})
		return transErr
	})

	if txErr != nil {
		return nil, nil, fmt.Errorf("top-up: %w", txErr)
	}
	return card, transaction, nil
}

// Deduct примитив гарантированного списания: уводящая в минус операция откатывается
// с domain.ErrNotEnoughBalance. Запись журнала примитив не создает - метка зависит от
// сценария, её добавляет вызывающая операция (Transfer, SplitPayment, SplitBill).
// amount == 0 вырожденный случай: баланс не трогаем, возвращаем карту как есть.
func (s *LedgerService) Deduct(
	ctx context.Context,
	userID, cardID int64,
	amount decimal.Decimal,
	idempotencyKey string,
) (*domain.Card, error) {
	if amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	var card *domain.Card
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := s.checkOwnership(c, tx, userID, cardID); err != nil {
			return err
		}
		if err := s.registerIdempotencyKey(c, tx, idempotencyKey, cardID, "deduct"); err != nil {
			return err
		}

		var deltaErr error
		card, deltaErr = s.guardedDeduct(c, tx, cardID, amount)
		return deltaErr
	})

	if txErr != nil {
		return nil, fmt.Errorf("deduct: %w", txErr)
	}
	return card, nil
}

// Transfer списывает amount и пишет расходную транзакцию "Sent to {recipient}".
// Получатель вне системы (контакт по телефону/почте), поэтому зачисления второй стороне нет.
func (s *LedgerService) Transfer(
	ctx context.Context,
	userID, cardID int64,
	recipient string,
	amount decimal.Decimal,
	idempotencyKey string,
) (*domain.Card, *domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, nil, domain.ErrInvalidAmount
	}

	var card *domain.Card
	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := s.checkOwnership(c, tx, userID, cardID); err != nil {
			return err
		}
		if err := s.registerIdempotencyKey(c, tx, idempotencyKey, cardID, "transfer"); err != nil {
			return err
		}

		var deltaErr error
		card, deltaErr = s.guardedDeduct(c, tx, cardID, amount)
		if deltaErr != nil {
			return deltaErr
		}

		var transErr error
		transaction, transErr = s.appendTransaction(c, tx, repoargs.CreateTransaction{
			CardID: cardID,
			Name:   fmt.Sprintf("Sent to %s", recipient),
			Amount: amount.Neg(),
			Type:   domain.TransactionExpense,
		})
		return transErr
	})

	if txErr != nil {
		return nil, nil, fmt.Errorf("transfer: %w", txErr)
	}
	return card, transaction, nil
}

type Allocation struct {
	CardID int64
	Amount decimal.Decimal
}

// SplitPayment оплата одной покупки с нескольких карт. Сумма аллокаций должна сходиться
// с total точно, без допуска на округление. Все списания выполняются в одной транзакции:
// если средств не хватило хотя бы на одной карте, не остаётся ни одного частичного списания.
func (s *LedgerService) SplitPayment(
	ctx context.Context,
	userID int64,
	item string,
	total decimal.Decimal,
	allocations []Allocation,
) ([]domain.Card, error) {
	if !total.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	sum := decimal.Zero
	for _, allocation := range allocations {
		if allocation.Amount.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		sum = sum.Add(allocation.Amount)
	}
	if !sum.Equal(total) {
		return nil, domain.ErrUnbalancedSplit
	}

	var cards []domain.Card
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		for _, allocation := range allocations {
			if allocation.Amount.IsZero() {
				continue
			}
			if err := s.checkOwnership(c, tx, userID, allocation.CardID); err != nil {
				return err
			}
			card, deltaErr := s.guardedDeduct(c, tx, allocation.CardID, allocation.Amount)
			if deltaErr != nil {
				return deltaErr
			}
			if _, transErr := s.appendTransaction(c, tx, repoargs.CreateTransaction{
				CardID: allocation.CardID,
				Name:   fmt.Sprintf("Purchase: %s", item),
				Amount: allocation.Amount.Neg(),
				Type:   domain.TransactionExpense,
			}); transErr != nil {
				return transErr
			}
			cards = append(cards, *card)
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("split payment: %w", txErr)
	}
	return cards, nil
}

type Participant struct {
	Name  string
	Email string
}

type SplitBillNotice struct {
	Payer      string
	PayerEmail string
	Share      decimal.Decimal
	Message    string
}

// DeliveryResult результат доставки уведомления одному участнику.
type DeliveryResult struct {
	Participant Participant
	Err         error
}

type SplitBillArgs struct {
	CardID       int64
	Amount       decimal.Decimal
	Payer        string
	PayerEmail   string
	Message      string
	Participants []Participant
}

type SplitBillResult struct {
	Card        *domain.Card
	Transaction *domain.Transaction
	Share       decimal.Decimal
	Deliveries  []DeliveryResult
}

// SplitBill списывает всю сумму с карты плательщика, пишет расходную транзакцию и
// рассылает участникам их долю (сумма / (участники + 1), округление до центов).
// Списание финально с момента коммита: сбои доставки собираются по каждому участнику
// отдельно и не откатывают деньги.
func (s *LedgerService) SplitBill(ctx context.Context, userID int64, args SplitBillArgs) (*SplitBillResult, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if len(args.Participants) == 0 {
		return nil, domain.ErrNoParticipants
	}

	var card *domain.Card
	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := s.checkOwnership(c, tx, userID, args.CardID); err != nil {
			return err
		}

		var deltaErr error
		card, deltaErr = s.guardedDeduct(c, tx, args.CardID, args.Amount)
		if deltaErr != nil {
			return deltaErr
		}

		var transErr error
		transaction, transErr = s.appendTransaction(c, tx, repoargs.CreateTransaction{
			CardID: args.CardID,
			Name:   splitBillTransactionName,
			Amount: args.Amount.Neg(),
			Type:   domain.TransactionExpense,
		})
		return transErr
	})

	if txErr != nil {
		return nil, fmt.Errorf("split bill: %w", txErr)
	}

	share := args.Amount.Div(decimal.NewFromInt(int64(len(args.Participants) + 1))).Round(2)
	deliveries := s.notifier.Dispatch(ctx, SplitBillNotice{
		Payer:      args.Payer,
		PayerEmail: args.PayerEmail,
		Share:      share,
		Message:    args.Message,
	}, args.Participants)

	return &SplitBillResult{
		Card:        card,
		Transaction: transaction,
		Share:       share,
		Deliveries:  deliveries,
	}, nil
}

type RecordTransactionArgs struct {
	CardID int64
	Name   string
	Amount decimal.Decimal
	Type   domain.TransactionType
}

// RecordTransaction произвольная помеченная операция: применяет подписанную дельту к балансу
// и пишет запись журнала одной транзакцией. Тип обязан соответствовать знаку суммы,
// иначе domain.ErrTypeSignMismatch. Журнальная запись без движения денег не поддерживается -
// она нарушила бы инвариант balance == sum(transactions).
func (s *LedgerService) RecordTransaction(
	ctx context.Context,
	userID int64,
	args RecordTransactionArgs,
) (*domain.Card, *domain.Transaction, error) {
	if args.Amount.IsZero() {
		return nil, nil, domain.ErrInvalidAmount
	}
	switch args.Type {
	case domain.TransactionIncome:
		if args.Amount.IsNegative() {
			return nil, nil, domain.ErrTypeSignMismatch
		}
	case domain.TransactionExpense:
		if args.Amount.IsPositive() {
			return nil, nil, domain.ErrTypeSignMismatch
		}
	default:
		return nil, nil, domain.ErrTypeSignMismatch
	}

	var card *domain.Card
	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := s.checkOwnership(c, tx, userID, args.CardID); err != nil {
			return err
		}

		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}
		guard := domain.GuardNone
		if args.Amount.IsNegative() {
			guard = domain.GuardNonNegative
		}
		var deltaErr error
		card, deltaErr = cardRepo.ApplyBalanceDelta(c, repoargs.ApplyBalanceDelta{
			CardID: args.CardID,
			Delta:  args.Amount,
			Guard:  guard,
		})
		if deltaErr != nil {
			return deltaErr //nolint:wrapcheck
		}

		var transErr error
		transaction, transErr = s.appendTransaction(c, tx, repoargs.CreateTransaction{
			CardID: args.CardID,
			Name:   args.Name,
			Amount: args.Amount,
			Type:   args.Type,
		})
		return transErr
	})

	if txErr != nil {
		return nil, nil, fmt.Errorf("recording transaction: %w", txErr)
	}
	return card, transaction, nil
}

// GetTransactionsByUser возвращает транзакции всех карт юзера, новые сверху.
func (s *LedgerService) GetTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	cards, cardsErr := s.cardRepo.GetByUserID(ctx, userID)
	if cardsErr != nil {
		return nil, cardsErr //nolint:wrapcheck
	}
	if len(cards) == 0 {
		return nil, nil
	}
	cardIDs := make([]int64, len(cards))
	for i, card := range cards {
		cardIDs[i] = card.ID
	}

	transactions, err := s.transactionRepo.GetByCardIDs(ctx, cardIDs)
	if err != nil {
		return nil, fmt.Errorf("getting transactions: %w", err)
	}
	return transactions, nil
}

// checkOwnership проверяет, что карта принадлежит юзеру. Чужая карта - domain.ErrOwnerConflict.
func (s *LedgerService) checkOwnership(ctx context.Context, tx uow.TX, userID, cardID int64) error {
	cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
	if cardRepoErr != nil {
		return cardRepoErr //nolint:wrapcheck
	}
	card, getErr := cardRepo.GetByID(ctx, cardID)
	if getErr != nil {
		return getErr //nolint:wrapcheck
	}
	if card.UserID != userID {
		return domain.ErrOwnerConflict
	}
	return nil
}

func (s *LedgerService) guardedDeduct(
	ctx context.Context,
	tx uow.TX,
	cardID int64,
	amount decimal.Decimal,
) (*domain.Card, error) {
	cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
	if cardRepoErr != nil {
		return nil, cardRepoErr //nolint:wrapcheck
	}
	if amount.IsZero() {
		return cardRepo.GetByID(ctx, cardID) //nolint:wrapcheck
	}
	card, err := cardRepo.ApplyBalanceDelta(ctx, repoargs.ApplyBalanceDelta{
		CardID: cardID,
		Delta:  amount.Neg(),
		Guard:  domain.GuardNonNegative,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return card, nil
}

func (s *LedgerService) appendTransaction(
	ctx context.Context,
	tx uow.TX,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	transactionRepo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	transaction, err := transactionRepo.CreateTransaction(ctx, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transaction, nil
}

// registerIdempotencyKey фиксирует ключ идемпотентности, если клиент его передал.
// Повтор ключа превращается в domain.ErrIdempotencyReplay: повторно полученная мутация
// отклоняется, а не применяется дважды.
func (s *LedgerService) registerIdempotencyKey(
	ctx context.Context,
	tx uow.TX,
	key string,
	cardID int64,
	operation string,
) error {
	if key == "" {
		return nil
	}
	idemRepo, idemRepoErr := uow.GetAs[IdempotencyRepository](tx, uow.RepositoryName(repoargs.IdempotencyRepoName))
	if idemRepoErr != nil {
		return idemRepoErr //nolint:wrapcheck
	}
	if err := idemRepo.RegisterKey(ctx, repoargs.RegisterIdempotencyKey{
		Key:       key,
		CardID:    cardID,
		Operation: operation,
	}); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return domain.ErrIdempotencyReplay
		}
		return err //nolint:wrapcheck
	}
	return nil
}
