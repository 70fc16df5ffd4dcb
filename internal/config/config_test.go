package config

import (
	"strings"
	"testing"
)

func TestDatabaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      DatabaseConfig
		wantErr     bool
		wantMissing []string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Server:   "tcp:example.database.windows.net,1433",
				User:     "svc_trace",
				Password: "secret",
			},
			wantErr: false,
		},
		{
			name:        "all missing",
			config:      DatabaseConfig{},
			wantErr:     true,
			wantMissing: []string{"AZURE_SQL_CONNECTION_STRING", "AZURE_SQL_DB_USER", "AZURE_SQL_DB_PASSWORD"},
		},
		{
			name: "missing password only",
			config: DatabaseConfig{
				Server: "tcp:example.database.windows.net,1433",
				User:   "svc_trace",
			},
			wantErr:     true,
			wantMissing: []string{"AZURE_SQL_DB_PASSWORD"},
		},
		{
			name: "whitespace is missing",
			config: DatabaseConfig{
				Server:   "  ",
				User:     "svc_trace",
				Password: "secret",
			},
			wantErr:     true,
			wantMissing: []string{"AZURE_SQL_CONNECTION_STRING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, name := range tt.wantMissing {
				if !strings.Contains(err.Error(), name) {
					t.Errorf("Validate() error %q does not name %s", err.Error(), name)
				}
			}
		})
	}
}

func TestDatabaseConfig_Resolve(t *testing.T) {
	cfg := DatabaseConfig{
		Server:         "tcp:example.database.windows.net,1433",
		User:           "svc_trace",
		Password:       "secret",
		ConnectTimeout: 30,
	}

	driver, dsn, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if driver != DefaultDriver {
		t.Errorf("driver = %q, want %q", driver, DefaultDriver)
	}
	for _, fragment := range []string{
		"server=tcp:example.database.windows.net,1433",
		"user id=svc_trace",
		"password=secret",
		"database=" + DefaultDatabase,
		"encrypt=true",
		"connection timeout=30",
	} {
		if !strings.Contains(dsn, fragment) {
			t.Errorf("dsn missing %q", fragment)
		}
	}
}

func TestDatabaseConfig_ResolveIncomplete(t *testing.T) {
	cfg := DatabaseConfig{User: "svc_trace"}
	if _, _, err := cfg.Resolve(); err == nil {
		t.Error("Resolve() error = nil, want incomplete configuration error")
	}
}

func TestDatabaseConfig_ResolveDefaults(t *testing.T) {
	cfg := DatabaseConfig{
		Server:   "tcp:example.database.windows.net,1433",
		User:     "svc_trace",
		Password: "secret",
		Database: "Traceability_PROD",
		Driver:   "sqlserver",
	}

	_, dsn, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !strings.Contains(dsn, "database=Traceability_PROD") {
		t.Errorf("dsn does not carry the configured database: %s", dsn)
	}
	// Unset timeout falls back to 60 seconds.
	if !strings.Contains(dsn, "connection timeout=60") {
		t.Errorf("dsn does not carry the default timeout: %s", dsn)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TRACE_TEST_VAR", "value")
	if got := GetEnv("TRACE_TEST_VAR", "fallback"); got != "value" {
		t.Errorf("GetEnv() = %q, want value", got)
	}
	if got := GetEnv("TRACE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want fallback", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TRACE_TEST_INT", "42")
	if got := GetEnvAsInt("TRACE_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvAsInt() = %d, want 42", got)
	}
	t.Setenv("TRACE_TEST_INT", "not a number")
	if got := GetEnvAsInt("TRACE_TEST_INT", 7); got != 7 {
		t.Errorf("GetEnvAsInt() = %d, want fallback 7", got)
	}
}
