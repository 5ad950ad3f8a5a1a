package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"pagination": map[string]any{
			"publicLimit": 12,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "PAGINATION_PUBLICLIMIT", want: "pagination.publicLimit"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Pagination.PublicLimit != 12 || cfg.Pagination.AdminLimit != 10 || cfg.Pagination.MaxLimit != 100 {
		t.Fatalf("unexpected pagination defaults: %+v", *cfg.Pagination)
	}
	if cfg.Storage.MaxImageSize != 5<<20 || cfg.Storage.MaxImages != 5 {
		t.Fatalf("unexpected storage defaults: %+v", *cfg.Storage)
	}
	if cfg.Auth.AccessTTL <= 0 || cfg.Auth.RefreshTTL <= cfg.Auth.AccessTTL {
		t.Fatalf("unexpected token lifetimes: %+v", *cfg.Auth)
	}
	if cfg.Database.SkipMigrations || cfg.Database.SlowQueryThreshold != defaultSlowQueryThreshold ||
		cfg.Database.PoolMonitorInterval != defaultPoolMonitorInterval {
		t.Fatalf("unexpected database defaults: %+v", *cfg.Database)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Pagination: &PaginationConfig{PublicLimit: 24, AdminLimit: 50, MaxLimit: 200}}
	cfg.applyDefaults()

	if cfg.Pagination.PublicLimit != 24 || cfg.Pagination.AdminLimit != 50 || cfg.Pagination.MaxLimit != 200 {
		t.Fatalf("configured pagination overwritten: %+v", *cfg.Pagination)
	}
}
