package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_PATH", "")
	t.Setenv("SERVER_PORT", "")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "data/db.json", cfg.Store.Path)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.False(t, cfg.Quota.ShopLimitEnabled)
	assert.Equal(t, "khata.messages", cfg.NSQ.Topic)
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=8088\nSHOP_QUOTA_ENABLED=true\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv does not override variables that are already set
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SHOP_QUOTA_ENABLED", "")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("SHOP_QUOTA_ENABLED")

	cfg := InitConfig(path)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.True(t, cfg.Quota.ShopLimitEnabled)
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	t.Setenv("KHATA_TEST_INT", "abc")
	assert.Equal(t, 7, GetEnvAsInt("KHATA_TEST_INT", 7))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("KHATA_TEST_BOOL", "true")
	assert.True(t, GetEnvAsBool("KHATA_TEST_BOOL", false))

	t.Setenv("KHATA_TEST_BOOL", "nope")
	assert.False(t, GetEnvAsBool("KHATA_TEST_BOOL", false))
}

func TestLoadPlanCatalog_Defaults(t *testing.T) {
	catalog, err := LoadPlanCatalog("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPlanCatalog(), catalog)
}

func TestLoadPlanCatalog_FileOverridesSomePlans(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plans.yaml")
	yaml := "plans:\n  pro:\n    monthly_price: 150\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	catalog, err := LoadPlanCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, float64(150), catalog[models.PlanPro].MonthlyPrice)
	assert.Equal(t, float64(1000), catalog[models.PlanPro].YearlyPrice)
	assert.Equal(t, "Dokan Pro", catalog[models.PlanPro].Name)
	assert.Equal(t, float64(5000), catalog[models.PlanTitanium].YearlyPrice)
	assert.Equal(t, 1000, catalog[models.PlanSMSPack].SMSQuota)
}

func TestLoadPlanCatalog_MissingFile(t *testing.T) {
	_, err := LoadPlanCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read plan catalog")
}

func TestLoadPlanCatalog_RejectsFreePlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plans:\n  free:\n    monthly_price: 1\n"), 0o600))

	_, err := LoadPlanCatalog(path)
	assert.Error(t, err)
}
