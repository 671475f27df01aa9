package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from .env files without overriding the ones already
// set. With no paths it tries ./.env and ignores its absence.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		err := godotenv.Load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("unable to load env files %v: %w", paths, err)
	}
	return nil
}

func lookupInt(key string, fallback int) (int, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// Development is on when DEVELOPMENT is set to anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	return ok && development != "0"
}
