package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	testCases := []struct {
		name string
		cfg  models.NewRelicConfig
	}{
		{name: "disabled", cfg: models.NewRelicConfig{Enabled: false, LicenseKey: "key"}},
		{name: "missing license", cfg: models.NewRelicConfig{Enabled: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, InitNewRelic(&models.Config{NewRelic: tc.cfg}))
		})
	}
}

func TestEchoMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := EchoMiddleware(nil)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})(c)

	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWithSegment_WithoutTransaction(t *testing.T) {
	want := errors.New("failed")
	err := WithSegment(context.Background(), "ledger.balances", func() error { return want })
	assert.ErrorIs(t, err, want)

	v, err := WithSegmentAndReturn(context.Background(), "ledger.summary", func() (int, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	ctx, end := StartBackgroundTransaction(context.Background(), nil, "job")
	end()
	assert.Equal(t, context.Background(), ctx)
}
