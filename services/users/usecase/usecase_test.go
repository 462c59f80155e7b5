package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	jwtpkg "github.com/piresc/dokanbaki/internal/pkg/jwt"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/users"
	"github.com/piresc/dokanbaki/services/users/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Secret@123"

type fakeSMS struct {
	to, body string
	err      error
}

func (f *fakeSMS) SendSMS(_ context.Context, to, body string) error {
	f.to, f.body = to, body
	return f.err
}

type testEnv struct {
	uc      *UserUC
	otpRepo *repository.OTPRepo
	sms     *fakeSMS
	clock   *time.Time
}

func setup(t *testing.T) *testEnv {
	store, err := jsondb.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "dokan-baki"}}
	otpRepo := repository.NewOTPRepo(store)
	sms := &fakeSMS{}
	uc := NewUserUC(repository.NewUserRepo(store), otpRepo, sms, cfg)
	uc.bcryptCost = bcrypt.MinCost

	clock := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }
	return &testEnv{uc: uc, otpRepo: otpRepo, sms: sms, clock: &clock}
}

func (e *testEnv) register(t *testing.T) *models.User {
	user, err := e.uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Karim",
		Mobile:   "+880 1711-111111",
		Email:    "Karim@Example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	env := setup(t)
	user := env.register(t)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "01711111111", user.Mobile)
	assert.Equal(t, "karim@example.com", user.Email)
	assert.Equal(t, models.PlanFree, user.SubscriptionPlan)
	assert.Zero(t, user.SMSBalance)
	assert.Empty(t, user.Password, "hash is never returned")

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{"missing name", models.RegisterRequest{Mobile: "01811111111", Password: testPassword}, users.ErrMissingFields},
		{"bad mobile", models.RegisterRequest{Name: "A", Mobile: "12345", Password: testPassword}, utils.ErrInvalidMobile},
		{"bad email", models.RegisterRequest{Name: "A", Mobile: "01811111111", Email: "nope", Password: testPassword}, users.ErrInvalidEmail},
		{"weak password", models.RegisterRequest{Name: "A", Mobile: "01811111111", Password: "password"}, utils.ErrWeakPassword},
		{"duplicate mobile", models.RegisterRequest{Name: "A", Mobile: "01711111111", Password: testPassword}, users.ErrMobileExists},
		{"duplicate email", models.RegisterRequest{Name: "A", Mobile: "01811111111", Email: "karim@example.com", Password: testPassword}, users.ErrEmailExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.uc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin(t *testing.T) {
	env := setup(t)
	user := env.register(t)

	tests := []struct {
		name       string
		req        models.LoginRequest
		assertFunc func(t *testing.T, resp *models.AuthResponse, err error)
	}{
		{
			name: "by mobile",
			req:  models.LoginRequest{Identifier: "01711111111", Password: testPassword},
			assertFunc: func(t *testing.T, resp *models.AuthResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, user.ID, resp.UserID)
				assert.Equal(t, jwtpkg.RoleUser, resp.Role)
				claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
				require.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
				assert.Empty(t, resp.User.Password)
			},
		},
		{
			name: "by email",
			req:  models.LoginRequest{Identifier: "KARIM@example.com", Password: testPassword},
			assertFunc: func(t *testing.T, resp *models.AuthResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, user.ID, resp.UserID)
			},
		},
		{
			name: "wrong password",
			req:  models.LoginRequest{Identifier: "01711111111", Password: "Wrong@1234"},
			assertFunc: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.ErrorIs(t, err, users.ErrInvalidPassword)
			},
		},
		{
			name: "unknown user",
			req:  models.LoginRequest{Identifier: "01999999999", Password: testPassword},
			assertFunc: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.ErrorIs(t, err, users.ErrUserNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.uc.Login(context.Background(), &tt.req)
			tt.assertFunc(t, resp, err)
		})
	}
}

func TestProfile(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	user := env.register(t)
	other, err := env.uc.Register(ctx, &models.RegisterRequest{Name: "Rahim", Mobile: "01811111111", Email: "rahim@example.com", Password: testPassword})
	require.NoError(t, err)

	updated, err := env.uc.UpdateProfile(ctx, user.ID, &models.ProfileUpdate{Name: "Karim Mia", Address: "Dhaka", Email: "karim@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Karim Mia", updated.Name)
	assert.Equal(t, "Dhaka", updated.Address)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)

	_, err = env.uc.UpdateProfile(ctx, user.ID, &models.ProfileUpdate{Name: "Karim", Email: other.Email})
	assert.ErrorIs(t, err, users.ErrEmailExists)

	got, err := env.uc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Karim Mia", got.Name)
	assert.Empty(t, got.Password)

	_, err = env.uc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestPasswordReset(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	env.register(t)

	// no OTP requested yet
	err := env.uc.ResetPassword(ctx, &models.ResetPasswordRequest{Mobile: "01711111111", OTP: "0000", NewPassword: "Newpass@123"})
	assert.ErrorIs(t, err, users.ErrOTPNotFound)

	assert.ErrorIs(t, env.uc.SendPasswordResetOTP(ctx, "01999999999"), users.ErrUserNotFound)

	require.NoError(t, env.uc.SendPasswordResetOTP(ctx, "01711111111"))
	assert.Equal(t, "01711111111", env.sms.to)
	code := regexp.MustCompile(`\d{4}`).FindString(env.sms.body)
	require.Len(t, code, 4)
	assert.Equal(t, "Your Baki Khata OTP is: "+code+". Valid for 5 minutes.", env.sms.body)

	wrong := "0000"
	if code == wrong {
		wrong = "1111"
	}
	err = env.uc.ResetPassword(ctx, &models.ResetPasswordRequest{Mobile: "01711111111", OTP: wrong, NewPassword: "Newpass@123"})
	assert.ErrorIs(t, err, users.ErrOTPMismatch)

	err = env.uc.ResetPassword(ctx, &models.ResetPasswordRequest{Mobile: "01711111111", OTP: code, NewPassword: "weak"})
	assert.ErrorIs(t, err, utils.ErrWeakPassword)

	require.NoError(t, env.uc.ResetPassword(ctx, &models.ResetPasswordRequest{Mobile: "01711111111", OTP: code, NewPassword: "Newpass@123"}))

	_, err = env.uc.Login(ctx, &models.LoginRequest{Identifier: "01711111111", Password: "Newpass@123"})
	assert.NoError(t, err)

	// single use
	err = env.uc.ResetPassword(ctx, &models.ResetPasswordRequest{Mobile: "01711111111", OTP: code, NewPassword: "Other@1234"})
	assert.ErrorIs(t, err, users.ErrOTPNotFound)
}

func TestResetPassword_Expired(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	env.register(t)

	otp, err := env.otpRepo.SaveOTP(ctx, "01711111111", "4321")
	require.NoError(t, err)
	expiry, err := models.ParseTime(otp.ExpiresAt)
	require.NoError(t, err)
	*env.clock = expiry.Add(time.Second)

	err = env.uc.ResetPassword(ctx, &models.ResetPasswordRequest{Mobile: "01711111111", OTP: "4321", NewPassword: "Newpass@123"})
	assert.ErrorIs(t, err, users.ErrOTPExpired)
}

func TestSendPasswordResetOTP_SenderFailure(t *testing.T) {
	env := setup(t)
	env.register(t)
	env.sms.err = errors.New("gateway down")

	err := env.uc.SendPasswordResetOTP(context.Background(), "01711111111")
	assert.Error(t, err)
}
