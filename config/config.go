package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database berdasarkan environment variables.
// DB_DRIVER: "mysql" atau "sqlite" (default sqlite untuk development).
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	switch driver {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			user := os.Getenv("DB_USER")
			pass := os.Getenv("DB_PASSWORD")
			host := os.Getenv("DB_HOST")
			name := os.Getenv("DB_NAME")
			if host == "" {
				host = "127.0.0.1:3306"
			}
			dsn = fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				user, pass, host, name)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "cleantrack.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}
