package model

import "time"

// Credential is one opaque key value for a (company, platform, key name)
// triple. Values are AES-GCM encrypted at rest; the core never inspects
// them beyond non-emptiness.
type Credential struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	PlatformName string    `json:"platform_name"`
	KeyName      string    `json:"key_name"`
	Value        string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Well-known credential key names.
const (
	KeyNameAPIKey       = "api_key"
	KeyNameClientID     = "client_id"
	KeyNameClientSecret = "client_secret"
	KeyNameBearerToken  = "bearer_token"
	KeyNameAccountSID   = "account_sid"
	KeyNameAuthToken    = "auth_token"
)
