package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("SEARCH_CREDIT_COST", "")
	t.Setenv("REPORT_CREDIT_COST", "")
	t.Setenv("INGEST_WORKERS", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.APIPort)
	}
	if cfg.SearchCreditCost != 1 {
		t.Fatalf("expected search cost 1, got %d", cfg.SearchCreditCost)
	}
	if cfg.ReportCreditCost != 5 {
		t.Fatalf("expected report cost 5, got %d", cfg.ReportCreditCost)
	}
	if cfg.IngestWorkers != 4 {
		t.Fatalf("expected 4 ingest workers, got %d", cfg.IngestWorkers)
	}
	if cfg.GeminiModel != "gemini-pro" {
		t.Fatalf("expected default model gemini-pro, got %q", cfg.GeminiModel)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("API_RATE_LIMIT_RPS", "2.5")
	t.Setenv("API_RATE_LIMIT_BURST", "10")
	t.Setenv("API_MAX_CONCURRENT", "64")
	t.Setenv("INGEST_WORKERS", "8")

	cfg := Load()
	if cfg.APIPort != "9000" {
		t.Fatalf("expected port override, got %q", cfg.APIPort)
	}
	if cfg.APIRateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit 2.5, got %f", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 10 {
		t.Fatalf("expected burst 10, got %d", cfg.APIRateLimitBurst)
	}
	if cfg.APIMaxConcurrent != 64 {
		t.Fatalf("expected max concurrent 64, got %d", cfg.APIMaxConcurrent)
	}
	if cfg.IngestWorkers != 8 {
		t.Fatalf("expected 8 ingest workers, got %d", cfg.IngestWorkers)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("INGEST_WORKERS", "many")
	t.Setenv("API_RATE_LIMIT_RPS", "fast")

	cfg := Load()
	if cfg.IngestWorkers != 4 {
		t.Fatalf("expected fallback 4 workers, got %d", cfg.IngestWorkers)
	}
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("expected fallback 0 rps, got %f", cfg.APIRateLimitRPS)
	}
}
