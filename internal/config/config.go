package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contains runtime configuration values.
type Config struct {
	Credentials Credentials

	PracticumEndpoint string
	RetryPeriod       time.Duration
	RequestTimeout    time.Duration
	// FromDate is the fixed lower bound of the polling window, in Unix seconds.
	// Zero means "process start".
	FromDate int64

	LogFile  string
	LogLevel string
}

const (
	defaultEndpoint    = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultRetryPeriod = 600 * time.Second
	defaultTimeout     = 30 * time.Second
	defaultLogFile     = "homework_bot.log"
	defaultLogLevel    = "debug"
)

// Environment variable names. The short aliases are kept for older .env files.
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"

	envPracticumAlias = "PR_TOKEN"
	envTelegramAlias  = "T_TOKEN"
	envChatIDAlias    = "CHAT_ID"
	envEndpoint       = "PRACTICUM_ENDPOINT"
	envRetryPeriod    = "RETRY_PERIOD"
	envRequestTimeout = "REQUEST_TIMEOUT"
	envFromDate       = "FROM_DATE"
	envLogFile        = "LOG_FILE"
	envLogLevel       = "LOG_LEVEL"
)

// viper keys
const (
	keyPracticumToken = "practicum_token"
	keyTelegramToken  = "telegram_token"
	keyTelegramChatID = "telegram_chat_id"
	keyEndpoint       = "practicum_endpoint"
	keyRetryPeriod    = "retry_period"
	keyRequestTimeout = "request_timeout"
	keyFromDate       = "from_date"
	keyLogFile        = "log_file"
	keyLogLevel       = "log_level"
)

const defaultDotenvFile = ".env"

// Load builds a Config from an optional .env file and environment variables
// with sane defaults. Credentials are not checked here; see Credentials.AllPresent.
func Load() (*Config, error) {
	return LoadFrom(defaultDotenvFile)
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an error.
func LoadFrom(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	v := viper.New()
	v.SetDefault(keyEndpoint, defaultEndpoint)
	v.SetDefault(keyRetryPeriod, defaultRetryPeriod)
	v.SetDefault(keyRequestTimeout, defaultTimeout)
	v.SetDefault(keyFromDate, 0)
	v.SetDefault(keyLogFile, defaultLogFile)
	v.SetDefault(keyLogLevel, defaultLogLevel)

	bindings := map[string][]string{
		keyPracticumToken: {EnvPracticumToken, envPracticumAlias},
		keyTelegramToken:  {EnvTelegramToken, envTelegramAlias},
		keyTelegramChatID: {EnvTelegramChatID, envChatIDAlias},
		keyEndpoint:       {envEndpoint},
		keyRetryPeriod:    {envRetryPeriod},
		keyRequestTimeout: {envRequestTimeout},
		keyFromDate:       {envFromDate},
		keyLogFile:        {envLogFile},
		keyLogLevel:       {envLogLevel},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		Credentials: Credentials{
			PracticumToken: v.GetString(keyPracticumToken),
			TelegramToken:  v.GetString(keyTelegramToken),
			TelegramChatID: v.GetString(keyTelegramChatID),
		},
		PracticumEndpoint: v.GetString(keyEndpoint),
		RetryPeriod:       parseDuration(v, keyRetryPeriod),
		RequestTimeout:    parseDuration(v, keyRequestTimeout),
		FromDate:          v.GetInt64(keyFromDate),
		LogFile:           v.GetString(keyLogFile),
		LogLevel:          v.GetString(keyLogLevel),
	}

	if cfg.RetryPeriod <= 0 {
		cfg.RetryPeriod = defaultRetryPeriod
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.FromDate < 0 {
		cfg.FromDate = 0
	}

	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = defaultEndpoint
	}

	return cfg, nil
}

// parseDuration accepts Go durations ("10m") as well as bare seconds ("600"),
// the latter matching how RETRY_PERIOD has always been written.
func parseDuration(v *viper.Viper, key string) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(v.GetString(key))); err == nil {
		return time.Duration(secs) * time.Second
	}
	return v.GetDuration(key)
}
