package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig pulls settings from a .env file into the process environment.
// A missing file is not an error; the variables may already be set by the
// hosting platform.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: skipping .env: %v", err)
		}
	}
	return nil
}
