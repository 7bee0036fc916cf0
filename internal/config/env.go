// Package config loads hwbot's configuration.
//
// Credentials are environment-only (they never live in a file on disk);
// everything tunable lives in an optional YAML config file. The file is
// decoded strictly so typos fail loudly instead of being ignored.
package config

import (
	"fmt"
	"strconv"
	"strings"

	env "github.com/Netflix/go-env"
)

// Env holds the required credentials. All three must be present and
// non-empty; startup aborts otherwise, before any network call.
type Env struct {
	// APIToken is the Practicum OAuth token.
	APIToken string
	// BotToken is the Telegram bot token.
	BotToken string
	// ChatID is the Telegram chat the bot reports to.
	ChatID int64
}

// rawEnv keeps CHAT_ID as a string so an empty or absent value is reported
// as "missing" together with the other variables instead of as a parse error.
type rawEnv struct {
	APIToken string `env:"API_TOKEN"`
	BotToken string `env:"BOT_TOKEN"`
	ChatID   string `env:"CHAT_ID"`
}

// LoadEnv reads credentials from the environment. All missing variables are
// reported together so the operator fixes them in one pass.
func LoadEnv() (*Env, error) {
	var r rawEnv
	if _, err := env.UnmarshalFromEnviron(&r); err != nil {
		return nil, fmt.Errorf("environment config: %w", err)
	}

	var missing []string
	if strings.TrimSpace(r.APIToken) == "" {
		missing = append(missing, "API_TOKEN")
	}
	if strings.TrimSpace(r.BotToken) == "" {
		missing = append(missing, "BOT_TOKEN")
	}
	if strings.TrimSpace(r.ChatID) == "" {
		missing = append(missing, "CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(r.ChatID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("CHAT_ID is not a valid chat id: %w", err)
	}

	return &Env{APIToken: r.APIToken, BotToken: r.BotToken, ChatID: chatID}, nil
}
