package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Asforaa/eBook-Store-API/internal/application/auth"
	"github.com/Asforaa/eBook-Store-API/internal/application/report"
	"github.com/Asforaa/eBook-Store-API/internal/application/usecase"
	"github.com/Asforaa/eBook-Store-API/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	BookUC    *usecase.BookUseCase
	OrderUC   *usecase.OrderUseCase
	ReviewUC  *usecase.ReviewUseCase
	ReportUC  *report.SalesReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Books: catálogo público + flujo de publicación protegido.
	// /binding se registra antes que /:id para que Fiber no lo capture como id.
	books := api.Group("/books")
	bookHandler := NewBookHandler(deps.BookUC)
	books.Get("/", bookHandler.ListPublished)
	books.Get("/binding", authRequired, RequireRole(entity.RolePublisher, entity.RoleAdmin), bookHandler.ListBinding)
	books.Get("/:id", bookHandler.GetByID)
	books.Post("/", authRequired, RequireRole(entity.RoleAuthor), bookHandler.Create)
	books.Patch("/:id", authRequired, RequireRole(entity.RoleAuthor), bookHandler.Update)
	books.Patch("/:id/status", authRequired, RequireRole(entity.RolePublisher, entity.RoleAdmin), bookHandler.UpdateStatus)
	books.Delete("/:id", authRequired, RequireRole(entity.RoleSuperAdmin), bookHandler.Delete)

	// Orders (protegido). Las rutas /sales van antes que /:id.
	orders := api.Group("/orders", authRequired)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReportUC)
	orders.Get("/sales", RequireRole(entity.RoleAdmin, entity.RolePublisher), orderHandler.AllSales)
	orders.Get("/sales/report", RequireRole(entity.RoleAdmin), orderHandler.SalesReport)
	orders.Get("/sales/:authorId", RequireRole(entity.RoleAuthor, entity.RolePublisher, entity.RoleAdmin), orderHandler.AuthorSales)
	orders.Post("/", RequireRole(entity.RoleBuyer), orderHandler.Create)
	orders.Get("/", RequireRole(entity.RoleBuyer), orderHandler.GetMyOrders)
	orders.Get("/:id", RequireRole(entity.RoleBuyer, entity.RoleAdmin, entity.RoleSuperAdmin), orderHandler.GetByID)

	// Reviews: lectura pública, escritura de compradores.
	reviews := api.Group("/reviews")
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews.Get("/", reviewHandler.List)
	reviews.Get("/book/:bookId", reviewHandler.ListByBook)
	reviews.Post("/", authRequired, RequireRole(entity.RoleBuyer), reviewHandler.Create)
	reviews.Patch("/:id", authRequired, RequireRole(entity.RoleBuyer), reviewHandler.Update)
	reviews.Delete("/:id", authRequired, RequireRole(entity.RoleBuyer, entity.RoleAdmin), reviewHandler.Delete)

	// Users (administración, protegido)
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin), userHandler.List)
	users.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin), userHandler.GetByID)
	users.Patch("/:id/role", RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin), userHandler.UpdateRole)
	users.Delete("/:id", RequireRole(entity.RoleSuperAdmin), userHandler.Delete)
}
