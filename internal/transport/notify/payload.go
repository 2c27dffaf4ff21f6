package notify

import (
	"encoding/json"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/fsdevblog/eazypay/internal/service"
)

const qrImageSize = 256

// paymentPayload структура, которую сканирует приложение получателя.
type paymentPayload struct {
	Payer      string `json:"payer"`
	PayerEmail string `json:"payerEmail"`
	Amount     string `json:"amount"`
	Message    string `json:"message"`
}

// renderQR кодирует данные запроса оплаты в PNG с QR-кодом.
func renderQR(notice service.SplitBillNotice) ([]byte, error) {
	message := notice.Message
	if message == "" {
		message = "Split bill payment"
	}
	data, marshalErr := json.Marshal(paymentPayload{
		Payer:      notice.Payer,
		PayerEmail: notice.PayerEmail,
		Amount:     notice.Share.StringFixed(2),
		Message:    message,
	})
	if marshalErr != nil {
		return nil, errors.Wrap(marshalErr, "marshaling qr payload")
	}

	png, encodeErr := qrcode.Encode(string(data), qrcode.Medium, qrImageSize)
	if encodeErr != nil {
		return nil, errors.Wrap(encodeErr, "encoding qr image")
	}
	return png, nil
}
