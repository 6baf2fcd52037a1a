package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	UploadDir      string
	PublicBaseURL  string
	ScanInterval   time.Duration
	PushGatewayURL string
	MIMEAllowlist  []string
}

// ParseFlags validates flags and fills in environment/default fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var scanStr, mimeStr string

	fs := flag.NewFlagSet("lovenest", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.UploadDir, "uploads", "", "Directory for uploaded photos")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", "", "Public base URL for photo links")

	// Scheduler and push delivery
	fs.StringVar(&scanStr, "scan", "", "Reminder scan interval (e.g. 1m)")
	fs.StringVar(&cfg.PushGatewayURL, "push-url", "", "Push gateway URL")

	// Upload policy
	fs.StringVar(&mimeStr, "mime", "", "Comma-separated MIME allowlist for uploads (empty allows all)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.Getenv("UPLOAD_DIR")
		if cfg.UploadDir == "" {
			cfg.UploadDir = "uploads"
		}
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")
		if cfg.PublicBaseURL == "" {
			cfg.PublicBaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
		}
	}

	if scanStr == "" {
		scanStr = os.Getenv("REMINDER_SCAN_INTERVAL")
		if scanStr == "" {
			scanStr = "1m"
		}
	}
	interval, err := time.ParseDuration(scanStr)
	if err != nil || interval <= 0 {
		return Config{}, fmt.Errorf("invalid reminder scan interval %q", scanStr)
	}
	cfg.ScanInterval = interval

	if cfg.PushGatewayURL == "" {
		cfg.PushGatewayURL = os.Getenv("PUSH_GATEWAY_URL")
		if cfg.PushGatewayURL == "" {
			cfg.PushGatewayURL = "https://exp.host/--/api/v2/push/send"
		}
	}

	if mimeStr == "" {
		mimeStr = os.Getenv("MIME_ALLOWLIST")
	}
	cfg.MIMEAllowlist = splitMIMEList(mimeStr)

	return cfg, nil
}

func splitMIMEList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
