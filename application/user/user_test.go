package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/shreyasbagave/warehouse/application/user"
	"github.com/shreyasbagave/warehouse/cmd/config"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	redisrepo "github.com/shreyasbagave/warehouse/repository/redis"
	"github.com/shreyasbagave/warehouse/repository/sequence"
	userrepo "github.com/shreyasbagave/warehouse/repository/user"
	cerr "github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserApp() user.UserApp {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Expiration: time.Hour,
		},
	}
	return user.NewUserApp(cfg, userrepo.NewUserRepository(sequence.New(0)), redisrepo.NewRepository())
}

func registerInput() *model.RegisterRequest {
	return &model.RegisterRequest{
		Name:     "Rajesh Kumar",
		Email:    "rajesh@example.com",
		Phone:    "9876543210",
		Role:     "farmer",
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	app := newUserApp()

	resp, err := app.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, "Rajesh Kumar", resp.Name)
	assert.Equal(t, "rajesh@example.com", resp.Email)
	assert.Equal(t, constant.RoleFarmer, resp.Role)
}

func TestRegister_Duplicate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *model.RegisterRequest)
	}{
		{
			name:   "same email",
			mutate: func(req *model.RegisterRequest) { req.Phone = "1112223334" },
		},
		{
			name:   "same phone",
			mutate: func(req *model.RegisterRequest) { req.Email = "other@example.com" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newUserApp()
			ctx := context.Background()

			_, err := app.Register(ctx, registerInput())
			require.NoError(t, err)

			dup := registerInput()
			tt.mutate(dup)
			_, err = app.Register(ctx, dup)
			require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrCredentialExists))
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{name: "by email", identifier: "rajesh@example.com"},
		{name: "by phone", identifier: "9876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newUserApp()
			ctx := context.Background()

			_, err := app.Register(ctx, registerInput())
			require.NoError(t, err)

			resp, err := app.Login(ctx, &model.LoginRequest{
				Identifier: tt.identifier,
				Password:   "secret123",
			})
			require.NoError(t, err)

			assert.Equal(t, constant.RoleFarmer, resp.Role)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newUserApp()
	ctx := context.Background()

	_, err := app.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = app.Login(ctx, &model.LoginRequest{
		Identifier: "rajesh@example.com",
		Password:   "wrong",
	})
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidPassword))
}

func TestLogin_UnknownUser(t *testing.T) {
	app := newUserApp()

	_, err := app.Login(context.Background(), &model.LoginRequest{
		Identifier: "nobody@example.com",
		Password:   "whatever",
	})
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))
}

func TestValidateToken(t *testing.T) {
	app := newUserApp()
	ctx := context.Background()

	_, err := app.Register(ctx, registerInput())
	require.NoError(t, err)

	resp, err := app.Login(ctx, &model.LoginRequest{
		Identifier: "rajesh@example.com",
		Password:   "secret123",
	})
	require.NoError(t, err)

	userID, role, err := app.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), userID)
	assert.Equal(t, constant.RoleFarmer, role)
}

func TestLogout(t *testing.T) {
	app := newUserApp()
	ctx := context.Background()

	_, err := app.Register(ctx, registerInput())
	require.NoError(t, err)

	resp, err := app.Login(ctx, &model.LoginRequest{
		Identifier: "rajesh@example.com",
		Password:   "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, app.Logout(ctx, resp.Token))
}

func TestLogout_InvalidToken(t *testing.T) {
	app := newUserApp()

	err := app.Logout(context.Background(), "not-a-token")
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrUnauthorize))
}

func TestValidateToken_Garbage(t *testing.T) {
	app := newUserApp()

	_, _, err := app.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newUserApp()
	ctx := context.Background()

	_, err := issuer.Register(ctx, registerInput())
	require.NoError(t, err)
	resp, err := issuer.Login(ctx, &model.LoginRequest{
		Identifier: "rajesh@example.com",
		Password:   "secret123",
	})
	require.NoError(t, err)

	other := user.NewUserApp(&config.Config{
		JWT: config.JWTConfig{Secret: "different-secret", Expiration: time.Hour},
	}, userrepo.NewUserRepository(sequence.New(0)), redisrepo.NewRepository())

	_, _, err = other.ValidateToken(ctx, resp.Token)
	require.Error(t, err)
}
