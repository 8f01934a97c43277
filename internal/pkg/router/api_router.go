package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/AndikaSaputra/RumahLink/app/controllers"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/middleware"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/permissions"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max: 120,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// auth
	auth := v1.Group("/auth")
	auth.Post("/register", controllers.HandleAPIRegister)
	auth.Post("/login", controllers.HandleAPILogin)
	auth.Post("/logout", controllers.HandleAPILogout)

	// public listing access
	v1.Get("/properties", controllers.HandleAPIPropertySearch)
	v1.Get("/properties/:id", controllers.HandleAPIPropertyGet)
	v1.Get("/properties/:id/reviews", controllers.HandleAPIPropertyReviews)

	// payment provider webhook; authenticated by signature, not session
	v1.Post("/payments/midtrans/callback", controllers.HandleMidtransCallback)

	// listing management
	v1.Post("/properties",
		middleware.RequirePermission(permissions.PermListingCreate),
		controllers.HandleAPIPropertyCreate)
	v1.Patch("/properties/:id",
		middleware.RequirePermission(permissions.PermListingUpdateOwn),
		controllers.HandleAPIPropertyUpdate)
	v1.Delete("/properties/:id",
		middleware.RequirePermission(permissions.PermListingUpdateOwn),
		controllers.HandleAPIPropertyDelete)
	v1.Post("/properties/:id/reviews",
		middleware.RequirePermission(permissions.PermReviewCreate),
		controllers.HandleAPIReviewCreate)
	v1.Post("/properties/:id/contact",
		middleware.RequirePermission(permissions.PermContactRequest),
		controllers.HandleAPIContactRequest)

	// uploads
	v1.Post("/uploads/images",
		middleware.RequirePermission(permissions.PermUploadImage),
		controllers.HandleAPIUploadImage)

	// payments
	v1.Post("/payments/orders",
		middleware.RequirePermission(permissions.PermPaymentCreate),
		controllers.HandleAPICreateOrder)
	v1.Get("/payments/orders/:order_id", middleware.RequireAuth, controllers.HandleAPIPaymentStatus)
	v1.Get("/payments/history", middleware.RequireAuth, controllers.HandleAPIPaymentHistory)

	// current user
	user := v1.Group("/user", middleware.RequireAuth)
	user.Get("/me", controllers.HandleAPIUserMe)
	user.Get("/properties", controllers.HandleAPIMyProperties)
	user.Get("/contacts", controllers.HandleAPIContactHistory)

	// admin
	admin := v1.Group("/admin")
	admin.Get("/users",
		middleware.RequirePermission(permissions.PermUserManage),
		controllers.HandleAPIAdminUsers)
	admin.Post("/users/:id/promote-seller",
		middleware.RequirePermission(permissions.PermUserManage),
		controllers.HandleAPIAdminPromoteSeller)
	admin.Get("/properties/pending",
		middleware.RequirePermission(permissions.PermListingModerate),
		controllers.HandleAPIAdminPendingProperties)
	admin.Post("/properties/:id/approve",
		middleware.RequirePermission(permissions.PermListingModerate),
		controllers.HandleAPIAdminApproveProperty)
	admin.Post("/properties/:id/reject",
		middleware.RequirePermission(permissions.PermListingModerate),
		controllers.HandleAPIAdminRejectProperty)
	admin.Get("/logs",
		middleware.RequirePermission(permissions.PermAuditRead),
		controllers.HandleAPIAdminLogs)
	admin.Post("/counters/flush",
		middleware.RequirePermission(permissions.PermUserManage),
		controllers.HandleAPIAdminFlushCounters)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
