package service

import (
	"fmt"

	"github.com/fsdevblog/eazypay/internal/service/psswd"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

type AppServices struct {
	UserService   *UserService
	CardService   *CardService
	LedgerService *LedgerService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, notifier Notifier) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	cardService, cardServiceErr := NewCardService(unitOfWork)
	if cardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", cardServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(unitOfWork, notifier)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	return &AppServices{
		UserService:   userService,
		CardService:   cardService,
		LedgerService: ledgerService,
	}, nil
}
