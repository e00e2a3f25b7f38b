// Package spauth builds authenticated SharePoint HTTP transports from
// environment configuration using gosip auth strategies.
package spauth

import (
	"fmt"
	"net/http"
	"os"

	"github.com/koltyakov/gosip"
	"github.com/koltyakov/gosip/auth/addin"
	"github.com/koltyakov/gosip/auth/azurecert"
)

// Auth strategy names accepted in SP_AUTH_STRATEGY.
const (
	StrategyAzureCert = "azurecert"
	StrategyAddin     = "addin"
)

type Config struct {
	SiteURL      string
	Strategy     string
	TenantID     string
	ClientID     string
	ClientSecret string
	CertPath     string
	CertPassword string
}

// FromEnv reads the auth configuration from the environment. The caller is
// expected to have loaded any .env file beforehand.
func FromEnv() (Config, error) {
	cfg := Config{
		SiteURL:      os.Getenv("SP_SITE_URL"),
		Strategy:     getEnvWithDefault("SP_AUTH_STRATEGY", StrategyAzureCert),
		TenantID:     os.Getenv("SP_TENANT_ID"),
		ClientID:     os.Getenv("SP_CLIENT_ID"),
		ClientSecret: os.Getenv("SP_CLIENT_SECRET"),
		CertPath:     os.Getenv("SP_CERT_PATH"),
		CertPassword: os.Getenv("SP_CERT_PASSWORD"),
	}

	if cfg.SiteURL == "" {
		return cfg, fmt.Errorf("missing required configuration: SP_SITE_URL")
	}

	switch cfg.Strategy {
	case StrategyAzureCert:
		if cfg.TenantID == "" || cfg.ClientID == "" || cfg.CertPath == "" {
			return cfg, fmt.Errorf("azurecert strategy requires SP_TENANT_ID, SP_CLIENT_ID, SP_CERT_PATH")
		}
	case StrategyAddin:
		if cfg.ClientID == "" || cfg.ClientSecret == "" {
			return cfg, fmt.Errorf("addin strategy requires SP_CLIENT_ID, SP_CLIENT_SECRET")
		}
	default:
		return cfg, fmt.Errorf("unknown auth strategy %q", cfg.Strategy)
	}

	return cfg, nil
}

// NewClient builds a gosip client for the configured auth strategy.
func NewClient(cfg Config) (*gosip.SPClient, error) {
	switch cfg.Strategy {
	case StrategyAddin:
		ac := &addin.AuthCnfg{
			SiteURL:      cfg.SiteURL,
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
		}
		return &gosip.SPClient{AuthCnfg: ac}, nil
	case StrategyAzureCert, "":
		ac := &azurecert.AuthCnfg{
			SiteURL:  cfg.SiteURL,
			TenantID: cfg.TenantID,
			ClientID: cfg.ClientID,
			CertPath: cfg.CertPath,
			CertPass: cfg.CertPassword,
		}
		return &gosip.SPClient{AuthCnfg: ac}, nil
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.Strategy)
	}
}

// AuthTransport routes requests through gosip's Execute so every call
// carries the strategy's credentials. It satisfies splist.Doer.
type AuthTransport struct {
	client *gosip.SPClient
}

func (t *AuthTransport) Do(req *http.Request) (*http.Response, error) {
	return t.client.Execute(req)
}

// Transport wraps an authenticated gosip client as an HTTP transport.
func Transport(client *gosip.SPClient) *AuthTransport {
	return &AuthTransport{client: client}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
