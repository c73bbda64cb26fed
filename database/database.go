package database

import (
	"MovingList/internal/config"
	"MovingList/internal/models"
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"log"
	"os"
)

func SetupDatabase(configuration *config.Configuration) (*gorm.DB, error) {
	dialector, err := openDialector(configuration.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if configuration.Database.Driver == "sqlite" {
		// sqlite has a single writer, and every :memory: connection is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	err = db.AutoMigrate(&models.Box{}, &models.Item{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func openDialector(databaseConfig config.DatabaseConfig) (gorm.Dialector, error) {
	switch databaseConfig.Driver {
	case "sqlite":
		dsn := databaseConfig.DSN
		if dsn == "" {
			dsn = "movinglist.db"
		}
		return sqlite.Open(dsn), nil
	case "postgres", "":
		dsn := databaseConfig.DSN
		if dsn == "" {
			var err error
			dsn, err = postgresDSNFromEnv()
			if err != nil {
				return nil, err
			}
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", databaseConfig.Driver)
	}
}

func postgresDSNFromEnv() (string, error) {
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if envVariable == "DB_SSLMODE" {
			if os.Getenv(envVariable) == "" {
				if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
					return "", err
				}
			}
			continue
		}
		if os.Getenv(envVariable) == "" {
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
