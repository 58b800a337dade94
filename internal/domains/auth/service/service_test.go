package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/jwt"
	"hms/infras/otel/mocks"
	"hms/internal/domains/auth/model/dto"
	"hms/internal/domains/auth/service"
	userMocks "hms/internal/domains/user/mocks"
	userModel "hms/internal/domains/user/model"
	"hms/shared/constant"
	"hms/shared/password"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func newAuthService(ctrl *gomock.Controller) (service.Auth, *userMocks.MockUser, jwt.JWT) {
	users := userMocks.NewMockUser(ctrl)
	jwtService := jwt.New(testConfig())

	svc := service.New(users, testConfig(), mocks.NewOtel(), jwtService)

	return svc, users, jwtService
}

func staffUser(t *testing.T, plaintext string) userModel.User {
	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-id",
		Email:    "staff@hotel.local",
		Password: hashed,
		Name:     "Front Desk",
		Role:     constant.RoleStaff,
		Active:   true,
	}
}

func TestAuthLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(users *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "success",
			req:  dto.LoginRequest{Email: "staff@hotel.local", Password: "correct-password"},
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffUser(t, "correct-password"), nil)
				users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "staff@hotel.local", Password: "wrong-password"},
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffUser(t, "correct-password"), nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@hotel.local", Password: "correct-password"},
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "staff@hotel.local", Password: "correct-password"},
			setupMock: func(users *userMocks.MockUser) {
				user := staffUser(t, "correct-password")
				user.Active = false
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newAuthService(ctrl)
			tt.setupMock(users)

			res, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.AccessToken)
				assert.NotEmpty(t, res.RefreshToken)
				assert.Equal(t, constant.RoleStaff, res.Role)
			}
		})
	}
}

func TestAuthRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	svc, _, jwtService := newAuthService(ctrl)

	pair, err := jwtService.GenerateTokenPair("user-id", "staff@hotel.local", constant.RoleStaff)
	require.NoError(t, err)

	res, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: pair.RefreshToken})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)

	_, err = svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "not-a-token"})

	assert.Error(t, err)
}

func TestAuthChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(users *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "success",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct-password", NewPassword: "brand-new-password"},
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffUser(t, "correct-password"), nil)
				users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong-password", NewPassword: "brand-new-password"},
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffUser(t, "correct-password"), nil)
			},
			wantErr: true,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct-password", NewPassword: "brand-new-password"},
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newAuthService(ctrl)
			tt.setupMock(users)

			err := svc.ChangePassword(ctx, tt.req, "user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthCreateStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	req := dto.CreateStaffRequest{
		Email:    "new@hotel.local",
		Password: "initial-password",
		Name:     "New Hire",
		Role:     constant.RoleStaff,
	}

	tests := []struct {
		name      string
		setupMock func(users *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				users.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, req.Email, user.Email)
						assert.NotEqual(t, req.Password, user.Password)
						assert.True(t, user.Active)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "lookup failure",
			setupMock: func(users *userMocks.MockUser) {
				users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newAuthService(ctrl)
			tt.setupMock(users)

			err := svc.CreateStaff(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
