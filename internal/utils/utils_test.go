package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "local form", input: "01712345678", expected: "01712345678"},
		{name: "country code with plus", input: "+8801812345678", expected: "01812345678"},
		{name: "country code without plus", input: "8801912345678", expected: "01912345678"},
		{name: "spaces and dashes", input: "017-1234 5678", expected: "01712345678"},
		{name: "operator digit too low", input: "01212345678", wantErr: true},
		{name: "too short", input: "0171234567", wantErr: true},
		{name: "letters", input: "01712345abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMobile(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMobile)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "all classes", password: "Secret1@", valid: true},
		{name: "longer", password: "MyShop2024$$", valid: true},
		{name: "too short", password: "Se1@", valid: false},
		{name: "no upper", password: "secret1@x", valid: false},
		{name: "no lower", password: "SECRET1@X", valid: false},
		{name: "no digit", password: "Secret@@x", valid: false},
		{name: "no special", password: "Secret123", valid: false},
		{name: "disallowed character", password: "Secret1@#", valid: false},
		{name: "space", password: "Secret 1@", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestGenerateNumericCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateNumericCode(4)
		require.NoError(t, err)
		assert.Len(t, code, 4)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestEmailHelpers(t *testing.T) {
	assert.True(t, IsValidEmail("owner@shop.com.bd"))
	assert.False(t, IsValidEmail("owner@"))
	assert.True(t, LooksLikeEmail("a@b"))
	assert.False(t, LooksLikeEmail("01712345678"))
	assert.Equal(t, "*******5678", MaskMobile("01712345678"))
}

func TestResponses(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c echo.Context) error
		statusCode int
		errMsg     string
	}{
		{name: "bad request", call: func(c echo.Context) error { return BadRequestResponse(c, "name is required") }, statusCode: http.StatusBadRequest, errMsg: "name is required"},
		{name: "unauthorized default", call: func(c echo.Context) error { return UnauthorizedResponse(c, "") }, statusCode: http.StatusUnauthorized, errMsg: "Unauthorized"},
		{name: "forbidden default", call: func(c echo.Context) error { return ForbiddenResponse(c, "") }, statusCode: http.StatusForbidden, errMsg: "Forbidden"},
		{name: "not found default", call: func(c echo.Context) error { return NotFoundResponse(c, "") }, statusCode: http.StatusNotFound, errMsg: "Resource not found"},
		{name: "conflict", call: func(c echo.Context) error { return ConflictResponse(c, "mobile already registered") }, statusCode: http.StatusConflict, errMsg: "mobile already registered"},
		{name: "internal", call: func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, statusCode: http.StatusInternalServerError, errMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			assert.NoError(t, tt.call(c))
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.errMsg, response.Error)
			assert.Equal(t, tt.statusCode, response.Code)
		})
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, SuccessResponse(c, http.StatusCreated, "Shop created", map[string]string{"id": "s1"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Shop created","data":{"id":"s1"}}`, rec.Body.String())
}
