package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

const DefaultCardDesign = "netscard1"

type CardService struct {
	uow      uow.UOW
	cardRepo CardRepository
}

func NewCardService(u uow.UOW) (*CardService, error) {
	cardRepo, err := uow.GetRepositoryAs[CardRepository](u, uow.RepositoryName(repoargs.CardRepoName))
	if err != nil {
		return nil, err
	}
	return &CardService{
		uow:      u,
		cardRepo: cardRepo,
	}, nil
}

type AddCardArgs struct {
	Number string
	Holder string
	Expiry string
	Design string
}

// AddCard создает карту с нулевым балансом. Баланс дальше меняется только
// через LedgerService.
func (s *CardService) AddCard(ctx context.Context, userID int64, args AddCardArgs) (*domain.Card, error) {
	design := args.Design
	if design == "" {
		design = DefaultCardDesign
	}
	card, err := s.cardRepo.CreateCard(ctx, repoargs.CreateCard{
		UserID: userID,
		Number: args.Number,
		Holder: args.Holder,
		Expiry: args.Expiry,
		Design: design,
	})
	if err != nil {
		return nil, fmt.Errorf("adding card: %w", err)
	}
	return card, nil
}

// GetByUserID возвращает карты юзера в порядке добавления.
func (s *CardService) GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error) {
	cards, err := s.cardRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return cards, nil
}

// DeleteCard удаляет карту после проверки принадлежности. Исторические транзакции
// карты остаются в журнале.
func (s *CardService) DeleteCard(ctx context.Context, userID, cardID int64) error {
	card, getErr := s.cardRepo.GetByID(ctx, cardID)
	if getErr != nil {
		return fmt.Errorf("deleting card: %w", getErr)
	}
	if card.UserID != userID {
		return domain.ErrOwnerConflict
	}
	if err := s.cardRepo.DeleteCard(ctx, cardID); err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	return nil
}
