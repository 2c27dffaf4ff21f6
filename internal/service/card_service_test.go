package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/internal/service"
	"github.com/fsdevblog/eazypay/internal/service/mocks"
	"github.com/fsdevblog/eazypay/pkg/uow"
	uowmocks "github.com/fsdevblog/eazypay/pkg/uow/mocks"
)

type CardServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockCardRepo *mocks.MockCardRepository
	cardService  *service.CardService
}

func TestCardServiceSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}

func (s *CardServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockCardRepo = mocks.NewMockCardRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CardRepoName)).
		Return(s.mockCardRepo, nil).AnyTimes()

	cardService, servErr := service.NewCardService(s.mockUOW)
	s.Require().NoError(servErr)
	s.cardService = cardService
}

func (s *CardServiceTestSuite) TestAddCard() {
	var userID int64 = 1

	args := service.AddCardArgs{
		Number: gofakeit.CreditCardNumber(nil),
		Holder: gofakeit.Name(),
		Expiry: "12/30",
	}

	// дизайн не передан, ждем дефолтный.
	s.mockCardRepo.EXPECT().
		CreateCard(gomock.Any(), gomock.Eq(repoargs.CreateCard{
			UserID: userID,
			Number: args.Number,
			Holder: args.Holder,
			Expiry: args.Expiry,
			Design: service.DefaultCardDesign,
		})).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateCard) (*domain.Card, error) {
			return &domain.Card{
				ID:        1,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
				UserID:    createArgs.UserID,
				Number:    createArgs.Number,
				Holder:    createArgs.Holder,
				Expiry:    createArgs.Expiry,
				Balance:   decimal.Zero,
				Design:    createArgs.Design,
			}, nil
		})

	card, err := s.cardService.AddCard(s.T().Context(), userID, args)
	s.Require().NoError(err)

	s.Equal(service.DefaultCardDesign, card.Design)
	s.True(card.Balance.IsZero())
}

func (s *CardServiceTestSuite) TestDeleteCard() {
	var ownerID int64 = 1
	var strangerID int64 = 2

	card := domain.Card{
		ID:     10,
		UserID: ownerID,
	}

	s.mockCardRepo.EXPECT().GetByID(gomock.Any(), card.ID).Return(&card, nil).Times(2)
	s.mockCardRepo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)
	// удаление должно случиться ровно один раз - для владельца.
	s.mockCardRepo.EXPECT().DeleteCard(gomock.Any(), card.ID).Return(nil).Times(1)

	cases := []struct {
		name    string
		userID  int64
		cardID  int64
		wantErr error
	}{
		{name: "ok", userID: ownerID, cardID: card.ID},
		{name: "foreign card", userID: strangerID, cardID: card.ID, wantErr: domain.ErrOwnerConflict},
		{name: "missing card", userID: ownerID, cardID: 404, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.cardService.DeleteCard(s.T().Context(), t.userID, t.cardID)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
		})
	}
}

func (s *CardServiceTestSuite) TestGetByUserID() {
	var userID int64 = 1

	cards := []domain.Card{
		{ID: 1, UserID: userID, Balance: decimal.NewFromInt(100)},
		{ID: 2, UserID: userID, Balance: decimal.Zero},
	}
	s.mockCardRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(cards, nil)

	got, err := s.cardService.GetByUserID(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(cards, got)
}
