package splist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbosity_AcceptHeader(t *testing.T) {
	tests := []struct {
		verbosity Verbosity
		expected  string
	}{
		{VerbosityVerbose, "application/json; odata=verbose"},
		{VerbosityMinimal, "application/json; odata=minimalmetadata"},
		{VerbosityNone, "application/json; odata=nometadata"},
	}

	for _, tt := range tests {
		t.Run(string(tt.verbosity), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.verbosity.AcceptHeader())
		})
	}
}

func TestClient_Configure_MergesPartialSettings(t *testing.T) {
	c := New(nil, &Config{SiteURL: "http://x"})

	c.Configure(Settings{Token: Ptr("t")})
	c.Configure(Settings{ListTitle: Ptr("X")})

	// Earlier writes survive later partial updates.
	cfg := c.Config()
	assert.Equal(t, "t", cfg.Token)
	assert.Equal(t, "X", cfg.ListTitle)
	assert.Equal(t, "http://x", cfg.SiteURL)
}

func TestClient_Configure_Chains(t *testing.T) {
	c := New(nil, nil)

	got := c.Configure(Settings{SiteURL: Ptr("http://x")}).
		SelectList("Docs").
		Configure(Settings{Recursive: Ptr(true), Verbosity: Ptr(VerbosityNone)})

	assert.Same(t, c, got)
	assert.Equal(t, "Docs", c.Config().ListTitle)
	assert.True(t, c.Config().Recursive)
	assert.Equal(t, VerbosityNone, c.Config().Verbosity)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults_with_site", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing_site", mutate: func(c *Config) { c.SiteURL = "" }, wantErr: true},
		{name: "limit_too_large", mutate: func(c *Config) { c.Limit = 5001 }, wantErr: true},
		{name: "limit_too_small", mutate: func(c *Config) { c.Limit = 0 }, wantErr: true},
		{name: "limit_upper_bound", mutate: func(c *Config) { c.Limit = 5000 }, wantErr: false},
		{name: "unknown_verbosity", mutate: func(c *Config) { c.Verbosity = "chatty" }, wantErr: true},
		{name: "missing_template", mutate: func(c *Config) { c.ListTemplate = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SiteURL = "https://contoso.sharepoint.com/sites/dev"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	c := New(nil, &Config{SiteURL: "http://x"})

	cfg := c.Config()
	require.Equal(t, VerbosityVerbose, cfg.Verbosity)
	assert.Equal(t, DefaultListTemplate, cfg.ListTemplate)
	assert.Equal(t, DefaultItemTemplate, cfg.ItemTemplate)
	assert.Equal(t, 100, cfg.Limit)
}
