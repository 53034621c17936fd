package commands

import (
	"os"
	"time"

	"nuresults/lib/configutil"
	"nuresults/lib/scrapers/nu"
	"nuresults/lib/serviceutil"
)

type RetryConfig struct {
	// zero keeps the built-in attempt budget; retry_forever opts into
	// retrying until a definitive outcome
	MaxAttempts          int  `json:"max_attempts"`
	RetryForever         bool `json:"retry_forever"`
	CooldownSeconds      int  `json:"cooldown_seconds"`
	FaultCooldownSeconds int  `json:"fault_cooldown_seconds"`
}

type Config struct {
	BaseUrl        string      `json:"base_url"`
	ExamLevel      string      `json:"exam_level"`
	TimeoutSeconds int         `json:"timeout_seconds"`
	DelaySeconds   int         `json:"delay_seconds"`
	Retry          RetryConfig `json:"retry"`
	OutputCsv      string      `json:"output_csv"`
	AuditDb        string      `json:"audit_db"`
	ReportDir      string      `json:"report_dir"`
	// course count every rankable record must carry, zero accepts any
	// non-zero count
	ExpectedCourses int `json:"expected_courses"`
}

// loadConfig reads config.json5 from the cwd. A missing file is fine, the
// defaults describe the public portal.
func loadConfig() Config {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config.json5", err)
	}

	if config.BaseUrl == "" {
		config.BaseUrl = "http://result.nu.ac.bd"
	}
	if config.OutputCsv == "" {
		config.OutputCsv = "results/nu_results.csv"
	}
	if config.AuditDb == "" {
		config.AuditDb = "results/attempts.db"
	}
	if config.ReportDir == "" {
		config.ReportDir = "reports"
	}
	return config
}

func (c Config) retryPolicy() nu.RetryPolicy {
	policy := nu.DefaultRetryPolicy()
	if c.Retry.RetryForever {
		policy.MaxAttempts = 0
	} else if c.Retry.MaxAttempts > 0 {
		policy.MaxAttempts = c.Retry.MaxAttempts
	}
	if c.Retry.CooldownSeconds > 0 {
		policy.Cooldown = time.Duration(c.Retry.CooldownSeconds) * time.Second
	}
	if c.Retry.FaultCooldownSeconds > 0 {
		policy.FaultCooldown = time.Duration(c.Retry.FaultCooldownSeconds) * time.Second
	}
	return policy
}
