package model

import (
	"fmt"
	"os"
	"path/filepath"

	"docboard/backend/common"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func mysqlDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		common.DBUser, common.DBPass, common.DBHost, common.DBName)
}

// InitDB opens the database, verifies it with a probe query and ensures the
// schema exists. Any failure here is fatal to startup.
func InitDB() (err error) {
	var dbInstance *gorm.DB

	if common.UsingMySQL() {
		dsn := os.Getenv("SQL_DSN")
		if dsn == "" {
			dsn = mysqlDSN()
		}
		common.SysLog("using MySQL database on " + common.DBHost)
		dbInstance, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			PrepareStmt: true,
		})
	} else {
		common.SysLog("no MySQL credentials supplied, using SQLite as database: " + common.SQLitePath)
		if dir := filepath.Dir(common.SQLitePath); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dbInstance, err = gorm.Open(sqlite.Open(common.SQLitePath), &gorm.Config{
			PrepareStmt: true,
		})
	}

	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	if err = dbInstance.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database probe query failed: %w", err)
	}

	DB = dbInstance

	if err = DB.AutoMigrate(&File{}); err != nil {
		return fmt.Errorf("failed to auto migrate database schema: %w", err)
	}

	common.SysLog("database initialized successfully")
	return nil
}

func CloseDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("closing database connection")
	return sqlDB.Close()
}
