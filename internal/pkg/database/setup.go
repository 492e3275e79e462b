package database

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var DB *gorm.DB

// GetDB returns the shared connection. It is nil with DB_DRIVER=memory.
func GetDB() *gorm.DB {
	return DB
}

// Driver returns the configured DB_DRIVER
func Driver() string {
	return env.GetEnv("DB_DRIVER", DriverMySQL)
}

// DSN builds the connection string for driver from the DB_* variables.
func DSN(driver string) (string, error) {
	switch driver {
	case DriverMySQL:
		// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_PORT", "3306"),
			env.GetEnv("DB_NAME", ""),
		), nil
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_NAME", ""),
			env.GetEnv("DB_PORT", "5432"),
			env.GetEnv("DB_SSLMODE", "disable"),
		), nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func dialector(driver, dsn string) gorm.Dialector {
	if driver == DriverPostgres {
		return postgres.Open(dsn)
	}
	return mysql.New(mysql.Config{
		DSN:                       dsn,   // data source name
		DefaultStringSize:         256,   // default size for string fields
		DisableDatetimePrecision:  true,  // disable datetime precision, which not supported before MySQL 5.6
		DontSupportRenameIndex:    true,  // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
		DontSupportRenameColumn:   true,  // `change` when rename column, rename column not supported before MySQL 8, MariaDB
		SkipInitializeWithVersion: false, // auto configure based on currently MySQL version
	})
}

// SetupDatabase connects with retries and migrates the article and user tables.
// DB_DRIVER=memory skips the connection entirely.
func SetupDatabase() {
	driver := Driver()
	if driver == DriverMemory {
		log.Warn("[Database] DB_DRIVER=memory, articles will not survive a restart")
		return
	}

	dsn, err := DSN(driver)
	if err != nil {
		panic(err)
	}

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(dialector(driver, dsn), &gorm.Config{})
		if err == nil {
			if err = DB.AutoMigrate(
				&models.Article{},
				&models.User{},
			); err != nil {
				log.Errorf("[Database] AutoMigrate failed: %v", err)
			}
			log.Infof("[Database] Connected using %s driver", driver)
			return
		}

		log.Warnf("[Database] Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Infof("[Database] Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Ping checks the underlying connection pool.
func Ping() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
