// Package notify доставляет участникам разделенного счета их долю: QR с данными оплаты
// вложением к письму.
package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/eazypay/internal/service"
)

const defaultDispatchWorkers uint = 5

// Dispatcher рассылает уведомления участникам. Каждый участник обрабатывается независимо:
// плохой адрес одного не блокирует остальных, деньги к этому моменту уже списаны.
type Dispatcher struct {
	mailer  Mailer
	l       *logrus.Entry
	workers uint
}

func New(mailer Mailer, l *logrus.Logger) *Dispatcher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "dispatcher",
	})

	return &Dispatcher{
		mailer:  mailer,
		l:       loggerEntry,
		workers: defaultDispatchWorkers,
	}
}

// SetWorkers устанавливает кол-во воркеров рассылки.
func (d *Dispatcher) SetWorkers(workers uint) *Dispatcher {
	if workers > 0 {
		d.workers = workers
	}
	return d
}

// Dispatch рассылает notice всем участникам и возвращает результат по каждому.
// Порядок результатов совпадает с порядком участников.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	notice service.SplitBillNotice,
	participants []service.Participant,
) []service.DeliveryResult {
	results := make([]service.DeliveryResult, len(participants))
	for i, participant := range participants {
		results[i] = service.DeliveryResult{Participant: participant}
	}

	qrImage, qrErr := renderQR(notice)
	if qrErr != nil {
		// без QR слать нечего, помечаем всех участников неудачей.
		d.l.WithError(qrErr).Error("failed to render qr payload")
		for i := range results {
			results[i].Err = qrErr
		}
		return results
	}

	workers := d.workers
	if uint(len(participants)) < workers {
		workers = uint(len(participants))
	}

	jobs := make(chan int)
	wg := new(sync.WaitGroup)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i].Err = d.deliver(ctx, notice, participants[i], qrImage)
			}
		}()
	}

	for i := range participants {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, result := range results {
		if result.Err != nil {
			d.l.WithError(result.Err).
				WithField("recipient", result.Participant.Email).
				Warn("split bill notification failed")
		}
	}
	return results
}

func (d *Dispatcher) deliver(
	ctx context.Context,
	notice service.SplitBillNotice,
	participant service.Participant,
	qrImage []byte,
) error {
	message := notice.Message
	if message == "" {
		message = "Split bill payment"
	}
	mail := Mail{
		To:      participant.Email,
		Subject: fmt.Sprintf("Split Bill Request from %s", notice.Payer),
		Body: fmt.Sprintf(
			"%s has split a bill with you. Your share is $%s. Message: %s",
			notice.Payer, notice.Share.StringFixed(2), message,
		),
		Attachment:     qrImage,
		AttachmentName: "split-bill-qr.png",
	}
	return d.mailer.Send(ctx, mail)
}
