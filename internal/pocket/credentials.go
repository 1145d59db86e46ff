package pocket

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Credentials authenticate against the Pocket API. They are read from an
// env-style file under the bonk directory and never written by this code.
type Credentials struct {
	ConsumerKey string
	AccessToken string
}

// LoadCredentials reads the consumer key and access token from the given
// dotenv file.
func LoadCredentials(path string) (Credentials, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	creds := Credentials{
		ConsumerKey: values["POCKET_CONSUMER_KEY"],
		AccessToken: values["POCKET_ACCESS_TOKEN"],
	}
	if creds.ConsumerKey == "" || creds.AccessToken == "" {
		return Credentials{}, fmt.Errorf("credentials file %s is missing POCKET_CONSUMER_KEY or POCKET_ACCESS_TOKEN", path)
	}
	return creds, nil
}
