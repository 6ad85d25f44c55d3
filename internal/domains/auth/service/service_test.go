package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mykuliah/infras/jwt"
	jwtMocks "mykuliah/infras/jwt/mocks"
	"mykuliah/infras/otel/mocks"
	"mykuliah/internal/domains/auth/model/dto"
	"mykuliah/internal/domains/auth/service"
	userMocks "mykuliah/internal/domains/user/mocks"
	userModel "mykuliah/internal/domains/user/model"
	"mykuliah/shared/constant"
	"mykuliah/shared/failure"
)

var validUser = userModel.User{
	ID:       "U1",
	Email:    "zakaria@mykuliah.edu.my",
	Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
	Name:     "Prof. Zakaria",
	Role:     constant.RoleLecturer,
	Active:   true,
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, mocks.NewOtel(), mockJWT)

	inactiveUser := validUser
	inactiveUser.Active = false

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "zakaria@mykuliah.edu.my", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetByEmail(gomock.Any(), "zakaria@mykuliah.edu.my").
					Return(validUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(jwt.Subject{
						UserID: validUser.ID,
						Name:   validUser.Name,
						Email:  validUser.Email,
						Role:   validUser.Role,
					}).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						TokenType:    "Bearer",
					}, nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@mykuliah.edu.my", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "zakaria@mykuliah.edu.my", Password: "wrong"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "zakaria@mykuliah.edu.my", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(inactiveUser, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "zakaria@mykuliah.edu.my", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("boom"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "zakaria@mykuliah.edu.my", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(validUser, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any()).Return(nil, errors.New("sign failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, "U1", res.User.ID)
			assert.Equal(t, constant.RoleLecturer, res.User.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access-token", RefreshToken: "new-refresh-token"}, nil)
			},
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "invalid"},
			setupMock: func() {
				mockJWT.EXPECT().RefreshTokens("invalid").Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "new-access-token", res.AccessToken)
			assert.Equal(t, "new-refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, mocks.NewOtel(), mockJWT)

	withUser := func(id string) context.Context {
		return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantCode  int
	}{
		{
			name: "known user",
			ctx:  withUser("U1"),
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), "U1").Return(validUser, nil)
			},
		},
		{
			name:      "no identity",
			ctx:       context.Background(),
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "user removed from directory",
			ctx:  withUser("U404"),
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), "U404").Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Me(tt.ctx)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Prof. Zakaria", res.Name)
			assert.Equal(t, validUser.Email, res.Email)
		})
	}
}
