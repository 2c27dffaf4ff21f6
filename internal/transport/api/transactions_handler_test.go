package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/logger"
	"github.com/fsdevblog/eazypay/internal/service"
	"github.com/fsdevblog/eazypay/internal/service/tokens"
	"github.com/fsdevblog/eazypay/internal/transport/api/mocks"
	"github.com/fsdevblog/eazypay/internal/transport/api/testutils"
)

type TransactionsHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *mocks.MockLedgerServicer
	jwtToken          string
	userID            int64
}

func TestTransactionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionsHandlerTestSuite))
}

func (s *TransactionsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockLedgerService = mocks.NewMockLedgerServicer(mockCtrl)
	jwtSecret := []byte("super secret key")
	s.userID = 1

	var tokenErr error
	s.jwtToken, tokenErr = tokens.GenerateUserJWT(s.userID, time.Hour, jwtSecret)
	s.Require().NoError(tokenErr)

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		LedgerService: s.mockLedgerService,
		JWTSecretKey:  jwtSecret,
	})
}

func (s *TransactionsHandlerTestSuite) TestIndex() {
	transactions := []domain.Transaction{
		{ID: 2, CreatedAt: time.Now(), CardID: 10, Name: "Top-up", Amount: decimal.NewFromInt(50), Type: domain.TransactionIncome},
		{ID: 1, CreatedAt: time.Now().Add(-time.Hour), CardID: 10, Name: "Coffee", Amount: decimal.NewFromFloat(-4.20), Type: domain.TransactionExpense},
	}
	s.mockLedgerService.EXPECT().GetTransactionsByUser(gomock.Any(), s.userID).Return(transactions, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + TransactionsRoute,
	}, testutils.WithAuthToken(s.jwtToken))
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var response []TransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Require().Len(response, 2)
	s.Equal("income", response[0].Type)
	s.InDelta(-4.20, response[1].Amount, 0.0001)
}

func (s *TransactionsHandlerTestSuite) TestCreate() {
	okArgs := service.RecordTransactionArgs{
		CardID: 10,
		Name:   "Coffee",
		Amount: decimal.NewFromFloat(-4.20),
		Type:   domain.TransactionExpense,
	}

	s.mockLedgerService.EXPECT().
		RecordTransaction(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, args service.RecordTransactionArgs) (*domain.Card, *domain.Transaction, error) {
			s.Equal(okArgs.CardID, args.CardID)
			s.Equal(okArgs.Name, args.Name)
			s.True(args.Amount.Equal(okArgs.Amount))
			s.Equal(okArgs.Type, args.Type)
			return &domain.Card{ID: 10, UserID: s.userID, Balance: decimal.NewFromFloat(95.80)},
				&domain.Transaction{ID: 1, CardID: 10, Name: args.Name, Amount: args.Amount, Type: args.Type},
				nil
		})
	s.mockLedgerService.EXPECT().
		RecordTransaction(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, nil, domain.ErrTypeSignMismatch)

	cases := []struct {
		name       string
		payload    CreateTransactionParams
		wantStatus int
	}{
		{
			name: "ok",
			payload: CreateTransactionParams{
				CardID: 10,
				Name:   "Coffee",
				Amount: decimal.NewFromFloat(-4.20),
				Type:   "expense",
			},
			wantStatus: http.StatusCreated,
		}, {
			name: "type sign mismatch",
			payload: CreateTransactionParams{
				CardID: 10,
				Name:   "Coffee",
				Amount: decimal.NewFromFloat(4.20),
				Type:   "expense",
			},
			wantStatus: http.StatusBadRequest,
		}, {
			name: "unknown type",
			payload: CreateTransactionParams{
				CardID: 10,
				Name:   "Coffee",
				Amount: decimal.NewFromFloat(4.20),
				Type:   "refund",
			},
			// не проходит биндинг oneof, до сервиса не доходит.
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(t.payload)
			s.Require().NoError(marshalErr)

			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + TransactionsRoute,
				Body:   bytes.NewReader(body),
			}, testutils.WithHeader("Content-Type", "application/json"), testutils.WithAuthToken(s.jwtToken))
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
