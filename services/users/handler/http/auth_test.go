package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/users"
	"github.com/piresc/dokanbaki/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockUserUC)
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			body: `{"name":"Karim","mobile":"01711111111","password":"Secret@123"}`,
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, req *models.RegisterRequest) (*models.User, error) {
						assert.Equal(t, "Karim", req.Name)
						return &models.User{ID: "U1", Name: req.Name, Mobile: req.Mobile, SubscriptionPlan: models.PlanFree}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate mobile",
			body: `{"name":"Karim","mobile":"01711111111","password":"Secret@123"}`,
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, users.ErrMobileExists)
			},
			wantStatus: http.StatusConflict,
			wantError:  users.ErrMobileExists.Error(),
		},
		{
			name: "weak password",
			body: `{"name":"Karim","mobile":"01711111111","password":"x"}`,
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, utils.ErrWeakPassword)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  utils.ErrWeakPassword.Error(),
		},
		{
			name:       "invalid payload",
			body:       `{invalid_json}`,
			mockSetup:  func(m *mocks.MockUserUC) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserUC := mocks.NewMockUserUC(ctrl)
			tt.mockSetup(mockUserUC)
			h := NewAuthHandler(mockUserUC)
			c, rec := newJSONContext(http.MethodPost, "/auth/register", tt.body)

			// Act
			err := h.Register(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, tt.wantError, response["error"])
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(m *mocks.MockUserUC)
		wantStatus int
	}{
		{
			name: "success",
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Login(gomock.Any(), &models.LoginRequest{Identifier: "01711111111", Password: "Secret@123"}).
					Return(&models.AuthResponse{Token: "tok", UserID: "U1", Role: "user"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, users.ErrInvalidPassword)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown user",
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, users.ErrUserNotFound)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "store failure",
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserUC := mocks.NewMockUserUC(ctrl)
			tt.mockSetup(mockUserUC)
			h := NewAuthHandler(mockUserUC)
			c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"mobile":"01711111111","password":"Secret@123"}`)

			// Act
			err := h.Login(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResetPassword_OTPErrors(t *testing.T) {
	for _, otpErr := range []error{users.ErrOTPNotFound, users.ErrOTPMismatch, users.ErrOTPExpired} {
		t.Run(otpErr.Error(), func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserUC := mocks.NewMockUserUC(ctrl)
			mockUserUC.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).Return(otpErr)
			h := NewAuthHandler(mockUserUC)
			c, rec := newJSONContext(http.MethodPost, "/auth/password/reset", `{"mobile":"01711111111","otp":"1234","newPassword":"Newpass@123"}`)

			// Act
			err := h.ResetPassword(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, otpErr.Error(), response["error"])
		})
	}
}

func TestRequestPasswordReset_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	mockUserUC.EXPECT().SendPasswordResetOTP(gomock.Any(), "01711111111").Return(nil)
	h := NewAuthHandler(mockUserUC)
	c, rec := newJSONContext(http.MethodPost, "/auth/password/otp", `{"mobile":"01711111111"}`)

	// Act
	err := h.RequestPasswordReset(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfile(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	mockUserUC.EXPECT().GetProfile(gomock.Any(), "U1").Return(&models.User{ID: "U1", Name: "Karim"}, nil)
	h := NewUserHandler(mockUserUC)
	c, rec := newJSONContext(http.MethodGet, "/users/me", "")
	c.Set(middleware.ContextUserID, "U1")

	// Act
	err := h.GetProfile(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Karim", data["name"])
	_, hasPassword := data["password"]
	assert.False(t, hasPassword)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	mockUserUC.EXPECT().UpdateProfile(gomock.Any(), "U1", gomock.Any()).Return(nil, users.ErrEmailExists)
	h := NewUserHandler(mockUserUC)
	c, rec := newJSONContext(http.MethodPut, "/users/me", `{"name":"Karim","email":"taken@example.com"}`)
	c.Set(middleware.ContextUserID, "U1")

	// Act
	err := h.UpdateProfile(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
