package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvPathVariable names the environment variable that points to the .env
// file. When unset, [DefaultDotEnvPath] in the working directory is used.
const DotEnvPathVariable = "DOTENV_PATH"

// DefaultDotEnvPath is the .env file looked up when DOTENV_PATH is empty.
const DefaultDotEnvPath = ".env"

// loadDotEnv loads variables from the .env file at path into the process
// environment. Variables that are already set are left untouched. A missing
// default file is not an error; a missing explicitly named file is.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultDotEnvPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("error reading dotenv file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading dotenv file: %w", err)
	}

	return nil
}
