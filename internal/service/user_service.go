package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/internal/service/tokens"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Password string
}

// Register создает юзера в базе данных. После успешного создания генерирует jwt token.
// Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}
	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var userErr, tokenErr error
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Username: args.Username,
			Password: password,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login аутентифицирует юзера по паре логин/пароль. При несовпадении пароля возвращает
// domain.ErrPasswordMissMatch, при отсутствии юзера - domain.ErrRecordNotFound.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindUserByUsername(ctx, args.Username)
	if userErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", userErr)
	}

	if !s.hasher.ComparePassword(args.Password, user.Password) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// DeleteAccount удаляет юзера вместе с его картами (каскад на уровне схемы).
// Транзакции остаются в журнале.
func (s *UserService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}
