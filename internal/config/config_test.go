// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
)

// configEnvVars lists every environment variable Load reads.
var configEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"UPLOAD_DIR", "UPLOAD_URL_PATH",
	"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_URL",
}

// clearConfigEnv blanks every config variable for the duration of the test.
// envOrDefault treats empty the same as unset, so defaults apply.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s: got %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("DBHost", cfg.DBHost, "localhost")
	check("DBPort", cfg.DBPort, "5432")
	check("DBUser", cfg.DBUser, "consultpress")
	check("DBPassword", cfg.DBPassword, "changeme")
	check("DBName", cfg.DBName, "consultpress")
	check("ValkeyHost", cfg.ValkeyHost, "")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("UploadDir", cfg.UploadDir, "public/uploads")
	check("UploadURLPath", cfg.UploadURLPath, "/uploads")
	check("S3Region", cfg.S3Region, "us-east-1")
	check("S3Bucket", cfg.S3Bucket, "consultpress-media")

	if cfg.UseS3() {
		t.Error("UseS3() should be false with no S3 credentials")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "9000")
	}
	if cfg.DBHost != "db.internal" {
		t.Errorf("DBHost: got %q, want %q", cfg.DBHost, "db.internal")
	}
	if cfg.UploadDir != "/srv/uploads" {
		t.Errorf("UploadDir: got %q, want %q", cfg.UploadDir, "/srv/uploads")
	}
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail in production with the default DB password")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := &Config{
		Host: "127.0.0.1", Port: "8081",
		DBHost: "localhost", DBPort: "5432",
		DBUser: "u", DBPassword: "p", DBName: "d",
	}

	wantDSN := "postgres://u:p@localhost:5432/d?sslmode=disable"
	if got := cfg.DSN(); got != wantDSN {
		t.Errorf("DSN(): got %q, want %q", got, wantDSN)
	}
	if got := cfg.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr(): got %q, want %q", got, "127.0.0.1:8081")
	}
}

func TestUseS3(t *testing.T) {
	cfg := &Config{S3Endpoint: "https://s3.example.com", S3AccessKey: "k", S3SecretKey: "s"}
	if !cfg.UseS3() {
		t.Error("UseS3() should be true with endpoint and credentials set")
	}

	cfg.S3SecretKey = ""
	if cfg.UseS3() {
		t.Error("UseS3() should be false without a secret key")
	}
}
