package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/eazypay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// NotifyServiceTimeout таймаут операций с рассылкой писем.
	NotifyServiceTimeout = 30 * time.Second
)

const (
	RouteGroup        = "/api"
	RegisterRoute     = "/user/register"
	LoginRoute        = "/user/login"
	UserRoute         = "/user"
	HealthRoute       = "/health"
	CardsRoute        = "/cards"
	TopUpRoute        = "/cards/topup"
	DeductRoute       = "/cards/deduct"
	TransferRoute     = "/cards/transfer"
	SplitPaymentRoute = "/cards/split-payment"
	SplitBillRoute    = "/split-bill"
	TransactionsRoute = "/transactions"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	UserService   UserServicer
	CardService   CardServicer
	LedgerService LedgerServicer
	JWTSecretKey  []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	cardsHandler := NewCardsHandler(args.CardService, args.LedgerService)
	transactionsHandler := NewTransactionsHandler(args.LedgerService)
	splitBillHandler := NewSplitBillHandler(args.LedgerService)

	api := r.Group(RouteGroup)

	api.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(UserRoute, authHandler.Me)
	api.DELETE(UserRoute, authHandler.DeleteAccount)

	api.GET(CardsRoute, cardsHandler.Index)
	api.POST(CardsRoute, cardsHandler.Create)
	api.DELETE(CardsRoute+"/:id", cardsHandler.Delete)

	api.POST(TopUpRoute, cardsHandler.TopUp)
	api.POST(DeductRoute, cardsHandler.Deduct)
	api.POST(TransferRoute, cardsHandler.Transfer)
	api.POST(SplitPaymentRoute, cardsHandler.SplitPayment)

	api.POST(SplitBillRoute, splitBillHandler.Create)

	api.GET(TransactionsRoute, transactionsHandler.Index)
	api.POST(TransactionsRoute, transactionsHandler.Create)
	return r
}
