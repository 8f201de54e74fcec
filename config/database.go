package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func LoadEnv() {
	_ = godotenv.Load()
}

// mysqlDSN menyusun DSN koneksi dari variabel DB_*. DB_PARAMS dapat
// menimpa parameter default; parseTime harus aktif karena model surat
// memakai kolom tanggal.
func mysqlDSN() string {
	params := os.Getenv("DB_PARAMS")
	if params == "" {
		params = "charset=utf8mb4&parseTime=true&loc=Local"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		params,
	)
}

func ConnectDB() *gorm.DB {
	LoadEnv()

	db, err := gorm.Open(mysql.Open(mysqlDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("cannot open database connection: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("cannot access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	DB = db
	log.Printf("database %s siap dipakai", os.Getenv("DB_NAME"))
	return DB
}
