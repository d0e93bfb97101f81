// Package auth stores the two API credentials in the system keyring.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cinemind-cli/cinemind/constant"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

// Credential names a stored secret. The value doubles as the keyring user.
type Credential string

const (
	TMDB   Credential = "tmdb_key"
	Gemini Credential = "gemini_key"
)

// Credentials lists every known credential.
var Credentials = []Credential{TMDB, Gemini}

var (
	ErrEmptyKey   = errors.New("TMDB API key is required")
	ErrInvalidKey = errors.New("invalid TMDB API key")
)

// Validator checks a TMDB key against the catalog.
type Validator interface {
	ValidateKey(ctx context.Context) bool
}

func (c Credential) configKey() string {
	if c == Gemini {
		return key.GeminiAPIKey
	}
	return key.TMDBAPIKey
}

// Label is the human name of the credential.
func (c Credential) Label() string {
	if c == Gemini {
		return "Gemini API key"
	}
	return "TMDB API key"
}

// Get returns the keyring value, falling back to the config file or environment.
func Get(c Credential) string {
	value, err := keyring.Get(constant.App, string(c))
	if err == nil && value != "" {
		return value
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		log.Warnf("keyring lookup for %s failed: %v", c, err)
	}
	return strings.TrimSpace(viper.GetString(c.configKey()))
}

// Set trims and stores value. An empty value deletes the credential.
func Set(c Credential, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return Delete(c)
	}

	if err := keyring.Set(constant.App, string(c), value); err != nil {
		log.Error("failed to save " + string(c) + " to keyring: " + err.Error())
		return fmt.Errorf("save %s: %w", c.Label(), err)
	}
	return nil
}

// Delete removes the credential from the keyring. Missing entries are not an error.
func Delete(c Credential) error {
	err := keyring.Delete(constant.App, string(c))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete %s: %w", c.Label(), err)
	}
	return nil
}

// SaveKeys validates the TMDB key and only then persists both keys.
// The Gemini key is optional.
func SaveKeys(ctx context.Context, newValidator func(tmdbKey string) Validator, tmdbKey, geminiKey string) error {
	tmdbKey = strings.TrimSpace(tmdbKey)
	geminiKey = strings.TrimSpace(geminiKey)

	if tmdbKey == "" {
		return ErrEmptyKey
	}

	if !newValidator(tmdbKey).ValidateKey(ctx) {
		return ErrInvalidKey
	}

	if err := Set(TMDB, tmdbKey); err != nil {
		return err
	}
	return Set(Gemini, geminiKey)
}

// Mask hides all but the first and last four characters.
func Mask(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 8 {
		return strings.Repeat("•", len(value))
	}
	return value[:4] + strings.Repeat("•", len(value)-8) + value[len(value)-4:]
}
