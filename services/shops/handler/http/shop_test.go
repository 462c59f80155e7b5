package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/shops"
	"github.com/piresc/dokanbaki/services/shops/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "U1")
	return c, rec
}

func TestCreateShop(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(m *mocks.MockShopUC)
		wantStatus int
	}{
		{
			name: "created",
			mockSetup: func(m *mocks.MockShopUC) {
				m.EXPECT().CreateShop(gomock.Any(), "U1", &models.ShopRequest{Name: "Karim Store"}).
					Return(&models.Shop{ID: "S1", OwnerID: "U1", Name: "Karim Store"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "limit reached",
			mockSetup: func(m *mocks.MockShopUC) {
				m.EXPECT().CreateShop(gomock.Any(), "U1", gomock.Any()).Return(nil, shops.ErrShopLimitReached)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "missing name",
			mockSetup: func(m *mocks.MockShopUC) {
				m.EXPECT().CreateShop(gomock.Any(), "U1", gomock.Any()).Return(nil, shops.ErrShopNameRequired)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockShopUC := mocks.NewMockShopUC(ctrl)
			tt.mockSetup(mockShopUC)
			h := NewShopHandler(mockShopUC)
			c, rec := newUserContext(http.MethodPost, "/shops", `{"name":"Karim Store"}`)

			// Act
			err := h.CreateShop(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListShops(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopUC := mocks.NewMockShopUC(ctrl)
	mockShopUC.EXPECT().ListShops(gomock.Any(), "U1").Return([]models.Shop{{ID: "S1", Name: "A"}, {ID: "S2", Name: "B"}}, nil)
	h := NewShopHandler(mockShopUC)
	c, rec := newUserContext(http.MethodGet, "/shops", "")

	// Act
	err := h.ListShops(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response["data"], 2)
}

func TestShopContext(t *testing.T) {
	tests := []struct {
		name       string
		shopHeader string
		mockSetup  func(m *mocks.MockShopUC)
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "authorized",
			shopHeader: "S1",
			mockSetup: func(m *mocks.MockShopUC) {
				m.EXPECT().AuthorizeShop(gomock.Any(), "U1", "S1").Return(&models.Shop{ID: "S1", OwnerID: "U1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			mockSetup:  func(m *mocks.MockShopUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "other owner",
			shopHeader: "S2",
			mockSetup: func(m *mocks.MockShopUC) {
				m.EXPECT().AuthorizeShop(gomock.Any(), "U1", "S2").Return(nil, shops.ErrShopForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown shop",
			shopHeader: "S9",
			mockSetup: func(m *mocks.MockShopUC) {
				m.EXPECT().AuthorizeShop(gomock.Any(), "U1", "S9").Return(nil, shops.ErrShopNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockShopUC := mocks.NewMockShopUC(ctrl)
			tt.mockSetup(mockShopUC)
			c, rec := newUserContext(http.MethodGet, "/ledger/summary", "")
			if tt.shopHeader != "" {
				c.Request().Header.Set(middleware.HeaderShopID, tt.shopHeader)
			}

			called := false
			next := func(c echo.Context) error {
				called = true
				assert.Equal(t, tt.shopHeader, middleware.ShopID(c))
				return c.NoContent(http.StatusOK)
			}

			// Act
			err := ShopContext(mockShopUC)(next)(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}
