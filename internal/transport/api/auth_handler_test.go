package api

import (
	"bytes"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/logger"
	"github.com/fsdevblog/eazypay/internal/service"
	"github.com/fsdevblog/eazypay/internal/service/tokens"
	"github.com/fsdevblog/eazypay/internal/transport/api/mocks"
	"github.com/fsdevblog/eazypay/internal/transport/api/testutils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{Username: "newuser", Password: "password"}).
		Return(&domain.User{ID: 1, Username: "newuser"}, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{Username: "taken", Password: "password"}).
		Return(nil, "", domain.ErrDuplicateKey)

	authorizedToken, tokenErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	cases := []struct {
		name       string
		payload    string
		jwtToken   string
		wantStatus int
		wantAuth   bool
	}{
		{
			name:       "ok",
			payload:    `{"login":"newuser","password":"password"}`,
			wantStatus: http.StatusOK,
			wantAuth:   true,
		}, {
			name:       "duplicate username",
			payload:    `{"login":"taken","password":"password"}`,
			wantStatus: http.StatusConflict,
		}, {
			name:       "short password",
			payload:    `{"login":"newuser","password":"123"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "malformed json",
			payload:    `{"login":`,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "already authorized",
			payload:    `{"login":"newuser","password":"password"}`,
			jwtToken:   authorizedToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			reqOpts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Content-Type", "application/json"),
			}
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithAuthToken(t.jwtToken))
			}
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, reqOpts...)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantAuth {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "user", Password: "password"}).
		Return(&domain.User{ID: 1, Username: "user"}, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "user", Password: "wrongpass"}).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "ghost", Password: "password"}).
		Return(nil, "", domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "ok", payload: `{"login":"user","password":"password"}`, wantStatus: http.StatusOK},
		{name: "wrong password", payload: `{"login":"user","password":"wrongpass"}`, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", payload: `{"login":"ghost","password":"password"}`, wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
