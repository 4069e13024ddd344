package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// loadEnvFiles loads variables from the given dotenv files without overriding
// the process environment. The default .env may be absent; an explicitly
// named file must exist.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}

	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil {
			continue
		}
		if f == defaultEnvFile && errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load env file %s: %w", f, err)
	}
	return nil
}
