package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/skynet2/beancount-telegram-importer/pkg/common"
)

const defaultJournalName = "journal.db"

// Config is the raw configuration as read from the YAML file and the
// environment. Environment variables override file values.
type Config struct {
	BotToken      string   `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID        int64    `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	ExportDir     string   `yaml:"export_dir" env:"EXPORT_DIR"`
	RootFolder    string   `yaml:"root_folder" env:"ROOT_FOLDER"`
	TempFolder    string   `yaml:"temp_folder" env:"TEMP_FOLDER"`
	AccountMap    []string `yaml:"account_map" env:"ACCOUNT_MAP" envSeparator:","`
	AttachmentMap []string `yaml:"attachment_map" env:"ATTACHMENT_MAP" envSeparator:","`
	JournalPath   string   `yaml:"journal_path" env:"JOURNAL_PATH"`
	NotifySummary bool     `yaml:"notify_summary" env:"NOTIFY_SUMMARY"`
	Reaction      string   `yaml:"reaction" env:"REACTION"`
	LogLevel      string   `yaml:"log_level" env:"LOG_LEVEL"`
}

// Settings is the validated configuration handed to every component.
type Settings struct {
	BotToken      string
	ChatID        int64
	ExportDir     string
	RootFolder    string
	TempFolder    string
	Accounts      common.AccountMapping
	Rules         []common.AttachmentRule
	JournalPath   string
	NotifySummary bool
	Reaction      string
	LogLevel      string
}

// Load reads .env (when present), then the optional YAML file, then the
// environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}

		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "failed to parse config %s", path), common.ErrConfiguration)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to parse environment"), common.ErrConfiguration)
	}

	return cfg, nil
}

// Validate checks the configuration needed by a sync run. Downloads need a
// staging folder, so the temp folder is only optional with noDownload.
func (c *Config) Validate(noDownload bool) (*Settings, error) {
	if c.RootFolder == "" {
		return nil, errors.Wrap(common.ErrConfiguration, "missing root folder")
	}

	if !noDownload && c.TempFolder == "" {
		return nil, errors.Wrap(common.ErrConfiguration, "missing temp folder")
	}

	settings, err := c.settings()
	if err != nil {
		return nil, err
	}

	if settings.Accounts.Len() == 0 {
		return nil, errors.Wrap(common.ErrConfiguration, "missing account map")
	}

	for _, rule := range settings.Rules {
		if _, ok := settings.Accounts.Lookup(rule.Account); !ok {
			return nil, errors.Wrapf(common.ErrConfiguration,
				"attachment rule %s uses unmapped account %s", rule.String(), rule.Account)
		}
	}

	return settings, nil
}

// ValidateSource checks only what is needed to reach the chat.
func (c *Config) ValidateSource() (*Settings, error) {
	if c.ExportDir == "" && c.BotToken == "" {
		return nil, errors.Wrap(common.ErrConfiguration, "either bot token or export dir is required")
	}

	return c.settings()
}

func (c *Config) settings() (*Settings, error) {
	accounts, err := common.ParseAccountMapping(c.AccountMap)
	if err != nil {
		return nil, err
	}

	rules, err := common.ParseAttachmentRules(c.AttachmentMap)
	if err != nil {
		return nil, err
	}

	journalPath := c.JournalPath
	if journalPath == "" && c.RootFolder != "" {
		journalPath = filepath.Join(c.RootFolder, defaultJournalName)
	}

	logLevel := c.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	return &Settings{
		BotToken:      c.BotToken,
		ChatID:        c.ChatID,
		ExportDir:     c.ExportDir,
		RootFolder:    c.RootFolder,
		TempFolder:    c.TempFolder,
		Accounts:      accounts,
		Rules:         rules,
		JournalPath:   journalPath,
		NotifySummary: c.NotifySummary,
		Reaction:      c.Reaction,
		LogLevel:      logLevel,
	}, nil
}
