package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "", ""), logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_MissingVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsAllFields(t *testing.T) {
	info := models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")
	svc := NewAppInfoService(info, logger.Nop())

	assert.Equal(t, info, svc.GetBuildInfo(context.Background()))
}
