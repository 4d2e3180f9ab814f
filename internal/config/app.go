package config

import "os"

const defaultPort = "8080"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Port returns a listen address, defaulting to :8080.
func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		port = defaultPort
	}
	return ":" + port
}
