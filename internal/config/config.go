package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/cipherkit"
)

const (
	defaultLanguage  = "en"
	defaultWidth     = 53
	defaultWordLists = "Languages"
	maximumWidth     = 500
)

// Config captures settings of the command line tool.
type Config struct {
	Language  string // code of a built-in language
	Width     int    // display line width
	WordLists string // directory with <code>.txt word lists
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (Config, error) {
	lang, err := readRequiredOrDefault("CIPHERKIT_LANG", defaultLanguage)
	if err != nil {
		return Config{}, err
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := cipherkit.LookupLanguage(lang); !ok {
		return Config{}, fmt.Errorf("CIPHERKIT_LANG: unknown language %q", lang)
	}

	width, err := readInt("CIPHERKIT_WIDTH", defaultWidth, 1, maximumWidth)
	if err != nil {
		return Config{}, err
	}

	dir, err := readRequiredOrDefault("CIPHERKIT_WORDLISTS", defaultWordLists)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Language:  lang,
		Width:     width,
		WordLists: filepath.Clean(dir),
	}, nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}
	return raw, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return parsed, nil
}
