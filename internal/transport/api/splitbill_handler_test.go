package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

type SplitBillHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *mocks.MockLedgerServicer
	jwtToken          string
	userID            int64
}

func TestSplitBillHandlerSuite(t *testing.T) {
	suite.Run(t, new(SplitBillHandlerTestSuite))
}

func (s *SplitBillHandlerTestSuite) SetupTest() {
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

func (s *SplitBillHandlerTestSuite) post(payload SplitBillParams) *http.Response {
	body, marshalErr := json.Marshal(payload)
	s.Require().NoError(marshalErr)

	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + SplitBillRoute,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader("Content-Type", "application/json"), testutils.WithAuthToken(s.jwtToken))
}

func (s *SplitBillHandlerTestSuite) TestCreate() {
	amount := decimal.NewFromInt(100)
	share := decimal.NewFromFloat(33.33)

	participants := []service.Participant{
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Carol", Email: "carol@example.com"},
	}

	s.mockLedgerService.EXPECT().
		SplitBill(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, args service.SplitBillArgs) (*service.SplitBillResult, error) {
			s.Equal("Alice", args.Payer)
			s.Equal(participants, args.Participants)
			return &service.SplitBillResult{
				Card:        &domain.Card{ID: 10, UserID: s.userID, Balance: decimal.NewFromInt(50)},
				Transaction: &domain.Transaction{ID: 1, CardID: 10, Name: "Split Bill Payment", Amount: amount.Neg(), Type: domain.TransactionExpense},
				Share:       share,
				Deliveries: []service.DeliveryResult{
					{Participant: participants[0]},
					{Participant: participants[1], Err: errors.New("mailbox unavailable")},
				},
			}, nil
		})

	res := s.post(SplitBillParams{
		CardID: 10,
		Amount: amount,
		Payer:  "Alice",
		Participants: []SplitBillParticipant{
			{Name: "Bob", Email: "bob@example.com"},
			{Name: "Carol", Email: "carol@example.com"},
		},
	})
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	// сбой доставки одному участнику не делает операцию ошибочной.
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var response struct {
		Share      float64            `json:"share"`
		Deliveries []DeliveryResponse `json:"deliveries"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.InDelta(33.33, response.Share, 0.0001)
	s.Require().Len(response.Deliveries, 2)
	s.True(response.Deliveries[0].Sent)
	s.False(response.Deliveries[1].Sent)
	s.NotEmpty(response.Deliveries[1].Error)
}

func (s *SplitBillHandlerTestSuite) TestCreate_InsufficientFunds() {
	s.mockLedgerService.EXPECT().
		SplitBill(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, domain.ErrNotEnoughBalance)

	res := s.post(SplitBillParams{
		CardID:       10,
		Amount:       decimal.NewFromInt(1000),
		Payer:        "Alice",
		Participants: []SplitBillParticipant{{Name: "Bob", Email: "bob@example.com"}},
	})
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *SplitBillHandlerTestSuite) TestCreate_NoParticipants() {
	// пустой список не проходит биндинг, до сервиса запрос не доходит.
	s.mockLedgerService.EXPECT().SplitBill(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res := s.post(SplitBillParams{
		CardID: 10,
		Amount: decimal.NewFromInt(100),
		Payer:  "Alice",
	})
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusBadRequest, res.StatusCode)
}
