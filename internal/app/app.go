package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/eazypay/internal/config"
	"github.com/fsdevblog/eazypay/internal/repository/pgrepo"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/internal/service"
	"github.com/fsdevblog/eazypay/internal/transport/api"
	"github.com/fsdevblog/eazypay/internal/transport/notify"
	"github.com/fsdevblog/eazypay/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	mailer := notify.NewSMTPMailer(
		a.Config.SMTPHost,
		a.Config.SMTPPort,
		a.Config.SMTPUser,
		a.Config.SMTPPassword,
		a.Config.SMTPFrom,
	)
	dispatcher := notify.New(mailer, a.Logger)

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret), dispatcher)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:        a.Logger,
		UserService:   services.UserService,
		CardService:   services.CardService,
		LedgerService: services.LedgerService,
		JWTSecretKey:  []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.CardRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCardRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.IdempotencyRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewIdempotencyRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
