package main

import (
	"log"
	"strings"

	"github.com/synchromes/esurat-sub001/config"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils"

	"gorm.io/gorm"
)

// permissionCatalog adalah daftar lengkap hak akses yang dikenal rute.
// Menambah fitur baru berarti menambah baris di sini lalu migrate ulang.
var permissionCatalog = []string{
	"letter.create",
	"letter.read",
	"letter.update",
	"letter.delete",
	"letter.submit",
	"letter.approve",
	"letter.archive",
	"disposition.create",
	"disposition.read",
	"disposition.update",
	"disposition.delete",
	"disposition.set_number",
	"category.manage",
	"archive_code.manage",
	"template.manage",
	"setting.manage",
	"user.manage",
	"role.manage",
	"file.upload",
}

// tataUsahaPermissions: operator harian tanpa wewenang approve,
// kelola user, atau kelola setting.
var tataUsahaPermissions = []string{
	"letter.create",
	"letter.read",
	"letter.update",
	"letter.delete",
	"letter.submit",
	"letter.archive",
	"disposition.create",
	"disposition.read",
	"disposition.update",
	"disposition.set_number",
	"template.manage",
	"file.upload",
}

func main() {
	db := config.ConnectDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.UserRole{},
		&models.LetterCategory{},
		&models.ArchiveCode{},
		&models.Template{},
		&models.Letter{},
		&models.Disposition{},
		&models.Setting{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedPermissions(db)
	seedRoles(db)
	seedSettings(db)
	seedAdmin(db)

	log.Println("Migration completed")
}

func seedPermissions(db *gorm.DB) {
	for _, name := range permissionCatalog {
		module := strings.SplitN(name, ".", 2)[0]
		perm := models.Permission{Name: name, Module: module}
		db.Where(models.Permission{Name: name}).FirstOrCreate(&perm)
	}
}

func seedRoles(db *gorm.DB) {
	var all []models.Permission
	db.Find(&all)

	admin := models.Role{Name: "admin", Description: "Akses penuh seluruh modul"}
	db.Where(models.Role{Name: "admin"}).FirstOrCreate(&admin)
	if err := db.Model(&admin).Association("Permissions").Replace(all); err != nil {
		log.Fatalf("Seed role admin failed: %v", err)
	}

	var tuPerms []models.Permission
	db.Where("name IN ?", tataUsahaPermissions).Find(&tuPerms)

	tu := models.Role{Name: "tata_usaha", Description: "Operator surat harian"}
	db.Where(models.Role{Name: "tata_usaha"}).FirstOrCreate(&tu)
	if err := db.Model(&tu).Association("Permissions").Replace(tuPerms); err != nil {
		log.Fatalf("Seed role tata_usaha failed: %v", err)
	}
}

func seedSettings(db *gorm.DB) {
	for _, def := range services.SettingDefs() {
		setting := models.Setting{Key: def.Key, Value: def.Default, Type: def.Type}
		db.Where(models.Setting{Key: def.Key}).FirstOrCreate(&setting)
	}
}

// seedAdmin membuat akun awal admin@example.com / admin12345 bila
// belum ada user sama sekali. Ganti password-nya setelah login pertama.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := utils.HashPassword("admin12345")
	if err != nil {
		log.Fatalf("Seed admin failed: %v", err)
	}

	var admin models.Role
	if err := db.Where("name = ?", "admin").First(&admin).Error; err != nil {
		log.Fatalf("Seed admin failed: role admin belum ada")
	}

	user := models.User{
		Name:         "Administrator",
		Email:        "admin@example.com",
		PasswordHash: hashed,
		IsActive:     true,
		Roles:        []models.Role{admin},
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Seed admin failed: %v", err)
	}

	log.Println("Seeded initial admin user admin@example.com")
}
