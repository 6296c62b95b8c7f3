package db

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bookDomain "github.com/Roonpandit/Library-Management/internal/domain/book"
	borrowDomain "github.com/Roonpandit/Library-Management/internal/domain/borrow"
	userDomain "github.com/Roonpandit/Library-Management/internal/domain/user"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates/updates the library schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&bookDomain.Book{},
		&borrowDomain.Borrow{},
		&userDomain.User{},
		&userDomain.BorrowedBook{},
		&userDomain.Notification{},
	)
}
