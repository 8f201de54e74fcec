package config

import "testing"

func TestValidateDatabaseConfigMissing(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_NAME", "")

	if err := ValidateDatabaseConfig(); err == nil {
		t.Fatal("expected validation error for missing database environment variables")
	}
}

func TestValidateDatabaseConfigSuccess(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("DB_NAME", "dbname")

	if err := ValidateDatabaseConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateJWTConfigMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if err := ValidateJWTConfig(); err == nil {
		t.Fatal("expected validation error for missing JWT secret")
	}
}

func TestValidateJWTConfigInvalidTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ACCESS_TTL", "not-a-duration")

	if err := ValidateJWTConfig(); err == nil {
		t.Fatal("expected validation error for invalid JWT access TTL")
	}
}

func TestValidateStorageConfigMissing(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "")

	if err := ValidateStorageConfig(); err == nil {
		t.Fatal("expected validation error for missing UPLOAD_DIR")
	}
}

func TestValidateAggregatesSections(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("DB_NAME", "dbname")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())

	if err := Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMysqlDSNBuildsFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "surat")
	t.Setenv("DB_PASS", "rahasia")
	t.Setenv("DB_NAME", "esurat")
	t.Setenv("DB_PARAMS", "")

	got := mysqlDSN()
	want := "surat:rahasia@tcp(db.internal:3307)/esurat?charset=utf8mb4&parseTime=true&loc=Local"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMysqlDSNCustomParams(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASS", "p")
	t.Setenv("DB_NAME", "db")
	t.Setenv("DB_PARAMS", "parseTime=true&tls=skip-verify")

	got := mysqlDSN()
	if got != "u:p@tcp(localhost:3306)/db?parseTime=true&tls=skip-verify" {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestLoadStorageConfigSigningKeyFallback(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "/var/uploads")
	t.Setenv("FILE_SIGNING_KEY", "")
	t.Setenv("JWT_SECRET", "jwt-secret")

	cfg := LoadStorageConfig()
	if cfg.SigningKey != "jwt-secret" {
		t.Fatalf("expected signing key to fall back to JWT_SECRET, got %q", cfg.SigningKey)
	}
}
