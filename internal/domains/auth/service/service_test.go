package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	cartMocks "resort/internal/domains/cart/mocks"
	"resort/internal/domains/notification/center"
	userMocks "resort/internal/domains/user/mocks"
	userModel "resort/internal/domains/user/model"
	"resort/shared/constant"
	"resort/shared/password"
)

type fixture struct {
	svc           service.Auth
	users         *userMocks.MockUser
	carts         *cartMocks.MockCart
	jwt           *jwtMocks.MockJWT
	notifications center.Center
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		users:         userMocks.NewMockUser(ctrl),
		carts:         cartMocks.NewMockCart(ctrl),
		jwt:           jwtMocks.NewMockJWT(ctrl),
		notifications: center.NewWithTTL(time.Minute),
	}

	f.svc = service.New(f.users, f.carts, f.notifications, &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func validUser(t *testing.T) userModel.User {
	t.Helper()

	hashed, err := password.Hash("password123")
	assert.NoError(t, err)

	return userModel.User{
		ID:       "user-id-123",
		Email:    "guest@example.com",
		Password: hashed,
		Role:     constant.RoleCustomer,
		Active:   true,
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(f *fixture)
		wantErr   bool
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Email:    "guest@example.com",
				Password: "password123",
			},
			setupMock: func(f *fixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.users.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u userModel.User) error {
						assert.Equal(t, constant.RoleCustomer, u.Role)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Email:    "guest@example.com",
				Password: "password123",
			},
			setupMock: func(f *fixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		f := newFixture(t)
		user := validUser(t)

		f.users.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		f.jwt.EXPECT().
			GenerateTokenPair(user.ID, user.Email, user.Role).
			Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)

		f.users.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    user.Email,
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(t), nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    "guest@example.com",
			Password: "wrong-password",
		})

		assert.Error(t, err)
	})

	t.Run("deactivated account", func(t *testing.T) {
		f := newFixture(t)

		user := validUser(t)
		user.Active = false

		f.users.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    user.Email,
			Password: "password123",
		})

		assert.Error(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("clears cart and notifications", func(t *testing.T) {
		f := newFixture(t)

		f.notifications.Push("user-id-123", "stale", "info")

		f.carts.EXPECT().
			Delete(gomock.Any(), "user-id-123").
			Return(nil)

		err := f.svc.Logout(context.Background(), "user-id-123")

		assert.NoError(t, err)

		remaining := f.notifications.List("user-id-123")
		assert.Len(t, remaining, 1)
		assert.Equal(t, "You have been signed out", remaining[0].Message)
	})

	t.Run("cart store failure surfaces", func(t *testing.T) {
		f := newFixture(t)

		f.carts.EXPECT().
			Delete(gomock.Any(), "user-id-123").
			Return(errors.New("redis down"))

		assert.Error(t, f.svc.Logout(context.Background(), "user-id-123"))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("token expired"))

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("successful change", func(t *testing.T) {
		f := newFixture(t)
		user := validUser(t)

		f.users.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		f.users.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user.ID)
		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "newpassword456",
		}, user.ID)

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(t), nil)

		err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "newpassword456",
		}, "user-id-123")

		assert.Error(t, err)
	})
}
