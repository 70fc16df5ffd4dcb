package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultDriver is the database/sql driver name used against Azure SQL.
	DefaultDriver = "sqlserver"

	// DefaultDatabase is the traceability database on the Azure SQL server.
	DefaultDatabase = "Traceability_TEST"
)

// DatabaseConfig holds the settings needed to reach the traceability database.
// The schema and stored procedures themselves are owned by the database team;
// this service only ever connects and calls them.
type DatabaseConfig struct {
	Server         string
	User           string
	Password       string
	Driver         string
	Database       string
	ConnectTimeout int // seconds, bounds connection establishment only
}

// Validate reports whether the configuration is complete enough to open a
// connection. An incomplete configuration is a request-time failure, not a
// startup crash.
func (c *DatabaseConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Server) == "" {
		missing = append(missing, "AZURE_SQL_CONNECTION_STRING")
	}
	if strings.TrimSpace(c.User) == "" {
		missing = append(missing, "AZURE_SQL_DB_USER")
	}
	if strings.TrimSpace(c.Password) == "" {
		missing = append(missing, "AZURE_SQL_DB_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete database configuration, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Resolve validates the configuration and returns the driver name and
// connection string for database/sql.
func (c *DatabaseConfig) Resolve() (driver string, dsn string, err error) {
	if err := c.Validate(); err != nil {
		return "", "", err
	}

	driver = c.Driver
	if driver == "" {
		driver = DefaultDriver
	}
	database := c.Database
	if database == "" {
		database = DefaultDatabase
	}
	timeout := c.ConnectTimeout
	if timeout <= 0 {
		timeout = 60
	}

	dsn = fmt.Sprintf(
		"server=%s;user id=%s;password=%s;database=%s;encrypt=true;TrustServerCertificate=false;connection timeout=%d",
		c.Server, c.User, c.Password, database, timeout,
	)
	return driver, dsn, nil
}
