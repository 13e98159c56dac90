package config

import (
	"os"
	"strconv"
)

// CA certificate lookup order: secret mount first, then the local dev path.
var dbCAPaths = []string{
	"/etc/secrets/ca.pem",
	"certs/ca.pem",
}

// GetDBHost returns the relational database host. An empty host selects the
// embedded SQLite fallback (see GetDBFile).
func GetDBHost() string {
	return os.Getenv("DB_HOST")
}

func GetDBPort() int {
	port, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil || port <= 0 {
		return 3306
	}
	return port
}

func GetDBName() string {
	return os.Getenv("DB_NAME")
}

func GetDBUser() string {
	return os.Getenv("DB_USER")
}

func GetDBPassword() string {
	return os.Getenv("DB_PASSWORD")
}

func IsDBTLSEnabled() bool {
	return os.Getenv("DB_SSL") == "true"
}

// GetDBCAPath returns the first CA bundle that exists on disk, or "" when
// none is present (TLS then relies on the system roots).
func GetDBCAPath() string {
	for _, p := range dbCAPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// GetDBFile returns the SQLite database path used when DB_HOST is unset.
func GetDBFile() string {
	dbFile := os.Getenv("DB_FILE")
	if dbFile == "" {
		dbFile = "census.db"
	}
	return dbFile
}
