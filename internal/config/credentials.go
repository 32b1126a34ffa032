package config

// Credentials are the secrets the bot cannot run without.
type Credentials struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string
}

// AllPresent reports whether every credential is non-empty.
func (c Credentials) AllPresent() bool {
	return len(c.Missing()) == 0
}

// Missing returns the environment variable names of the empty credentials.
func (c Credentials) Missing() []string {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, EnvPracticumToken)
	}
	if c.TelegramToken == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if c.TelegramChatID == "" {
		missing = append(missing, EnvTelegramChatID)
	}
	return missing
}
