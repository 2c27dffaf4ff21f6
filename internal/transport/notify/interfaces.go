package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import "context"

type Mail struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
