package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/razorpay?parseTime=true")
	setEnv(t, "RAZORPAY_KEY_ID", "rzp_test_key")
	setEnv(t, "RAZORPAY_KEY_SECRET", "rzp_test_secret")
}

func TestLoadRequiresMySQLDSN(t *testing.T) {
	unsetEnv(t, "MYSQL_DSN")
	setEnv(t, "RAZORPAY_KEY_ID", "rzp_test_key")
	setEnv(t, "RAZORPAY_KEY_SECRET", "rzp_test_secret")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing MYSQL_DSN")
	}
}

func TestLoadRequiresRazorpayCredentials(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/razorpay?parseTime=true")
	unsetEnv(t, "RAZORPAY_KEY_ID")
	unsetEnv(t, "RAZORPAY_KEY_SECRET")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing RAZORPAY_KEY_ID")
	}

	setEnv(t, "RAZORPAY_KEY_ID", "rzp_test_key")
	_, err = Load()
	if err == nil {
		t.Fatal("expected error for missing RAZORPAY_KEY_SECRET")
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	setRequiredEnv(t)
	setEnv(t, "APP_SERVICE_NAME", "razorpay-test")
	setEnv(t, "HTTP_PORT", "8181")
	setEnv(t, "MYSQL_MAX_OPEN_CONNS", "20")
	setEnv(t, "MYSQL_MAX_IDLE_CONNS", "8")
	setEnv(t, "MYSQL_CONN_MAX_LIFETIME_MINUTES", "40")
	setEnv(t, "RAZORPAY_WEBHOOK_SECRET", "whsec")
	setEnv(t, "RAZORPAY_HTTP_TIMEOUT_SECONDS", "15")
	setEnv(t, "PAYMENTS_RECONCILE_STALE_AFTER_MINUTES", "13")
	setEnv(t, "PAYMENTS_JOB_BATCH_SIZE", "99")
	setEnv(t, "PAYMENTS_RECONCILE_INTERVAL_MINUTES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.ServiceName != "razorpay-test" {
		t.Fatalf("unexpected app service name: %s", cfg.App.ServiceName)
	}
	if cfg.HTTP.Port != "8181" {
		t.Fatalf("unexpected http port: %s", cfg.HTTP.Port)
	}
	if cfg.MySQL.MaxOpenConns != 20 || cfg.MySQL.MaxIdleConns != 8 {
		t.Fatalf("unexpected mysql pool config: %+v", cfg.MySQL)
	}
	if cfg.MySQL.ConnMaxLifetime != 40*time.Minute {
		t.Fatalf("unexpected mysql lifetime: %v", cfg.MySQL.ConnMaxLifetime)
	}
	if cfg.Razorpay.KeyID != "rzp_test_key" || cfg.Razorpay.KeySecret != "rzp_test_secret" {
		t.Fatalf("unexpected razorpay credentials: %+v", cfg.Razorpay)
	}
	if cfg.Razorpay.WebhookSecret != "whsec" {
		t.Fatalf("unexpected webhook secret: %s", cfg.Razorpay.WebhookSecret)
	}
	if cfg.Razorpay.HTTPTimeout != 15*time.Second {
		t.Fatalf("unexpected razorpay http timeout: %v", cfg.Razorpay.HTTPTimeout)
	}
	if cfg.Payments.ReconcileStaleAfter != 13*time.Minute {
		t.Fatalf("unexpected reconcile stale after: %v", cfg.Payments.ReconcileStaleAfter)
	}
	if cfg.Payments.JobBatchSize != 99 {
		t.Fatalf("unexpected job batch size: %d", cfg.Payments.JobBatchSize)
	}
	if cfg.Jobs.ReconcileInterval != 3*time.Minute {
		t.Fatalf("unexpected reconcile interval: %v", cfg.Jobs.ReconcileInterval)
	}
}
