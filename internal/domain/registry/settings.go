package registry

import (
	"strings"
	"time"

	"github.com/resitrack/backend/internal/domain/shared"
)

// Setting keys for the issuing company's legal identity
const (
	SettingIssuerName     = "issuer.name"
	SettingIssuerAddress  = "issuer.address"
	SettingIssuerRegistry = "issuer.registry_number"
)

// issuerPlaceholders fill manifest snapshots when the corresponding setting
// was never configured, so document issuance does not block on setup.
var issuerPlaceholders = map[string]string{
	SettingIssuerName:     "Issuer pending configuration",
	SettingIssuerAddress:  "not specified",
	SettingIssuerRegistry: "pending",
}

// SystemSetting is one key/value configuration entry
type SystemSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSystemSetting validates and creates a setting entry
func NewSystemSetting(key, value string) (*SystemSetting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "setting key is required")
	}
	return &SystemSetting{
		Key:       strings.TrimSpace(key),
		Value:     value,
		UpdatedAt: time.Now(),
	}, nil
}

// SettingOrPlaceholder returns value when non-empty, otherwise the registered
// placeholder for the key, otherwise the empty string.
func SettingOrPlaceholder(key, value string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return issuerPlaceholders[key]
}
