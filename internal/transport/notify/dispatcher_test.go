package notify_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/eazypay/internal/service"
	"github.com/fsdevblog/eazypay/internal/transport/notify"
	"github.com/fsdevblog/eazypay/internal/transport/notify/mocks"
)

type DispatcherTestSuite struct {
	suite.Suite
	mockMailer *mocks.MockMailer
	dispatcher *notify.Dispatcher
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockMailer = mocks.NewMockMailer(mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.dispatcher = notify.New(s.mockMailer, l)
}

func (s *DispatcherTestSuite) notice() service.SplitBillNotice {
	return service.SplitBillNotice{
		Payer:      "Alice",
		PayerEmail: "alice@example.com",
		Share:      decimal.NewFromFloat(33.33),
		Message:    "Dinner",
	}
}

func (s *DispatcherTestSuite) TestDispatch() {
	participants := []service.Participant{
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Carol", Email: "carol@example.com"},
		{Name: "Dave", Email: "dave@example.com"},
	}

	sendErr := errors.New("smtp: 550 mailbox unavailable")

	var mu sync.Mutex
	var sentTo []string
	s.mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mail notify.Mail) error {
			mu.Lock()
			sentTo = append(sentTo, mail.To)
			mu.Unlock()

			s.Equal("Split Bill Request from Alice", mail.Subject)
			s.Contains(mail.Body, "$33.33")
			s.Contains(mail.Body, "Dinner")
			s.NotEmpty(mail.Attachment)
			s.Equal("split-bill-qr.png", mail.AttachmentName)

			if mail.To == "carol@example.com" {
				return sendErr
			}
			return nil
		}).Times(3)

	results := s.dispatcher.Dispatch(s.T().Context(), s.notice(), participants)
	s.Require().Len(results, 3)

	// всем троим была попытка доставки.
	s.ElementsMatch([]string{"bob@example.com", "carol@example.com", "dave@example.com"}, sentTo)

	// порядок результатов совпадает с порядком участников, сбой одного не трогает остальных.
	s.Equal(participants[0], results[0].Participant)
	s.NoError(results[0].Err)
	s.Equal(participants[1], results[1].Participant)
	s.ErrorIs(results[1].Err, sendErr)
	s.Equal(participants[2], results[2].Participant)
	s.NoError(results[2].Err)
}

func (s *DispatcherTestSuite) TestDispatch_NoParticipants() {
	s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	results := s.dispatcher.Dispatch(s.T().Context(), s.notice(), nil)
	s.Empty(results)
}

func (s *DispatcherTestSuite) TestDispatch_SingleWorker() {
	// один воркер обходит всех участников последовательно.
	s.dispatcher.SetWorkers(1)

	participants := []service.Participant{
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Carol", Email: "carol@example.com"},
	}

	s.mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	results := s.dispatcher.Dispatch(s.T().Context(), s.notice(), participants)
	s.Require().Len(results, 2)
	for _, result := range results {
		s.NoError(result.Err)
	}
}
