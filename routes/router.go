package routes

import (
	"github.com/synchromes/esurat-sub001/handlers"
	"github.com/synchromes/esurat-sub001/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(app *fiber.App, db *gorm.DB) {
	authHandler := handlers.NewAuthHandler(db)
	letterHandler := handlers.NewLetterHandler(db)
	dispositionHandler := handlers.NewDispositionHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	archiveCodeHandler := handlers.NewArchiveCodeHandler(db)
	templateHandler := handlers.NewTemplateHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	userHandler := handlers.NewUserHandler(db)
	roleHandler := handlers.NewRoleHandler(db)
	fileHandler := handlers.NewFileHandler(db)

	// Rute publik: verifikasi QR dan file bertanda tangan HMAC.
	app.Get("/verify/:code", letterHandler.VerifyLetter)
	app.Get("/files/+", fileHandler.ServeFile)

	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.RefreshToken)

	auth := api.Group("", middleware.RequireAuth())
	auth.Get("/auth/me", authHandler.GetMyProfile)
	auth.Post("/auth/change-password", authHandler.ChangePassword)

	// Letters
	auth.Post("/letters", middleware.RequirePermission("letter.create"), letterHandler.CreateLetter)
	auth.Get("/letters", middleware.RequirePermission("letter.read"), letterHandler.ListLetters)
	auth.Get("/letters/:id", middleware.RequirePermission("letter.read"), letterHandler.GetLetterByID)
	auth.Put("/letters/:id", middleware.RequirePermission("letter.update"), letterHandler.UpdateLetter)
	auth.Delete("/letters/:id", middleware.RequirePermission("letter.delete"), letterHandler.DeleteLetter)
	auth.Post("/letters/:id/submit", middleware.RequirePermission("letter.submit"), letterHandler.SubmitLetter)
	auth.Post("/letters/:id/approve", middleware.RequirePermission("letter.approve"), letterHandler.ApproveLetter)
	auth.Post("/letters/:id/reject", middleware.RequirePermission("letter.approve"), letterHandler.RejectLetter)
	auth.Post("/letters/:id/archive", middleware.RequirePermission("letter.archive"), letterHandler.ArchiveLetter)
	auth.Get("/letters/:id/bundle", middleware.RequirePermission("letter.read"), letterHandler.GetLetterBundle)

	// Dispositions
	auth.Post("/dispositions", middleware.RequirePermission("disposition.create"), dispositionHandler.CreateDisposition)
	auth.Get("/dispositions", middleware.RequirePermission("disposition.read"), dispositionHandler.ListDispositions)
	auth.Get("/dispositions/:id", middleware.RequirePermission("disposition.read"), dispositionHandler.GetDispositionByID)
	auth.Put("/dispositions/:id", middleware.RequirePermission("disposition.update"), dispositionHandler.UpdateDisposition)
	auth.Delete("/dispositions/:id", middleware.RequirePermission("disposition.delete"), dispositionHandler.DeleteDisposition)
	auth.Post("/dispositions/:id/number", middleware.RequirePermission("disposition.set_number"), dispositionHandler.SetDispositionNumber)
	auth.Get("/dispositions/:id/pdf", middleware.RequirePermission("disposition.read"), dispositionHandler.GetDispositionPDF)

	// Master data
	auth.Post("/categories", middleware.RequirePermission("category.manage"), categoryHandler.CreateCategory)
	auth.Get("/categories", middleware.RequirePermission("letter.read"), categoryHandler.ListCategories)
	auth.Get("/categories/:id", middleware.RequirePermission("letter.read"), categoryHandler.GetCategoryByID)
	auth.Put("/categories/:id", middleware.RequirePermission("category.manage"), categoryHandler.UpdateCategory)
	auth.Delete("/categories/:id", middleware.RequirePermission("category.manage"), categoryHandler.DeleteCategory)

	auth.Post("/archive-codes", middleware.RequirePermission("archive_code.manage"), archiveCodeHandler.CreateArchiveCode)
	auth.Get("/archive-codes", middleware.RequirePermission("letter.read"), archiveCodeHandler.ListArchiveCodes)
	auth.Get("/archive-codes/:id", middleware.RequirePermission("letter.read"), archiveCodeHandler.GetArchiveCodeByID)
	auth.Put("/archive-codes/:id", middleware.RequirePermission("archive_code.manage"), archiveCodeHandler.UpdateArchiveCode)
	auth.Delete("/archive-codes/:id", middleware.RequirePermission("archive_code.manage"), archiveCodeHandler.DeleteArchiveCode)

	auth.Post("/templates", middleware.RequirePermission("template.manage"), templateHandler.CreateTemplate)
	auth.Get("/templates", middleware.RequirePermission("letter.read"), templateHandler.ListTemplates)
	auth.Get("/templates/:id", middleware.RequirePermission("letter.read"), templateHandler.GetTemplateByID)
	auth.Put("/templates/:id", middleware.RequirePermission("template.manage"), templateHandler.UpdateTemplate)
	auth.Delete("/templates/:id", middleware.RequirePermission("template.manage"), templateHandler.DeleteTemplate)

	// Settings
	auth.Get("/settings", middleware.RequirePermission("setting.manage"), settingsHandler.ListSettings)
	auth.Put("/settings/:key", middleware.RequirePermission("setting.manage"), settingsHandler.UpdateSetting)

	// Files
	auth.Post("/files/upload", middleware.RequirePermission("file.upload"), fileHandler.UploadTemplateFile)
	auth.Get("/files/sign", middleware.RequirePermission("letter.read"), fileHandler.SignFileURL)

	// Admin: users dan roles
	admin := auth.Group("/admin")
	admin.Post("/users", middleware.RequirePermission("user.manage"), userHandler.CreateUser)
	admin.Get("/users", middleware.RequirePermission("user.manage"), userHandler.ListUsers)
	admin.Get("/users/:id", middleware.RequirePermission("user.manage"), userHandler.GetUserByID)
	admin.Put("/users/:id", middleware.RequirePermission("user.manage"), userHandler.UpdateUser)
	admin.Delete("/users/:id", middleware.RequirePermission("user.manage"), userHandler.DeleteUser)

	admin.Post("/roles", middleware.RequirePermission("role.manage"), roleHandler.CreateRole)
	admin.Get("/roles", middleware.RequirePermission("role.manage"), roleHandler.ListRoles)
	admin.Get("/roles/:id", middleware.RequirePermission("role.manage"), roleHandler.GetRoleByID)
	admin.Put("/roles/:id", middleware.RequirePermission("role.manage"), roleHandler.UpdateRole)
	admin.Delete("/roles/:id", middleware.RequirePermission("role.manage"), roleHandler.DeleteRole)
	admin.Get("/permissions", middleware.RequirePermission("role.manage"), roleHandler.ListPermissions)
}
