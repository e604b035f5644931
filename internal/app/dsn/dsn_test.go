package dsn

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "scheduler")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "scheduling")

	got := FromEnv()
	want := "host=db.local user=scheduler password=secret dbname=scheduling port=5433 sslmode=disable"
	if got != want {
		t.Errorf("FromEnv() = %q, want %q", got, want)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "scheduler")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_NAME", "scheduling")

	got := FromEnv()
	want := "host=localhost user=scheduler password= dbname=scheduling port=5432 sslmode=disable"
	if got != want {
		t.Errorf("FromEnv() = %q, want %q", got, want)
	}
}

func TestFromEnvMissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "scheduler")
	t.Setenv("DB_NAME", "")

	if got := FromEnv(); got != "" {
		t.Errorf("FromEnv() = %q, want empty string", got)
	}
}
