package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file in the current directory
// or its parent. Variables already set in the environment win. It returns the
// file that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	var (
		loaded string
		err    error
	)
	envOnce.Do(func() {
		loaded, err = loadEnvFrom(".")
	})
	return loaded, err
}

func loadEnvFrom(dir string) (string, error) {
	for _, candidate := range []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, "..", ".env"),
	} {
		if _, statErr := os.Stat(candidate); statErr != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return "", err
		}
		return candidate, nil
	}
	return "", nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
