package routes

import (
	"os"
	"strings"

	"pngbilling-backend/config"
	"pngbilling-backend/controllers"
	"pngbilling-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// crudHandlers bundles the five operations every resource exposes.
type crudHandlers struct {
	list   gin.HandlerFunc
	get    gin.HandlerFunc
	create gin.HandlerFunc
	update gin.HandlerFunc
	delete gin.HandlerFunc
}

// registerResource mounts the five routes for one resource segment, each
// gated on the matching entity action. The entity name itself is resolved
// inside RequireAccess from the request path.
func registerResource(api *gin.RouterGroup, resource string, h crudHandlers) {
	group := api.Group("/" + resource)
	{
		group.GET("", utils.RequireAccess("read"), h.list)
		group.GET("/:id", utils.RequireAccess("read"), h.get)
		group.POST("", utils.RequireAccess("create"), h.create)
		group.PUT("/:id", utils.RequireAccess("update"), h.update)
		group.DELETE("/:id", utils.RequireAccess("delete"), h.delete)
	}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		registerResource(api, "customers", crudHandlers{
			list:   controllers.GetCustomers,
			get:    controllers.GetCustomer,
			create: controllers.CreateCustomer,
			update: controllers.UpdateCustomer,
			delete: controllers.DeleteCustomer,
		})

		registerResource(api, "meter-readings", crudHandlers{
			list:   controllers.GetMeterReadings,
			get:    controllers.GetMeterReading,
			create: controllers.CreateMeterReading,
			update: controllers.UpdateMeterReading,
			delete: controllers.DeleteMeterReading,
		})

		registerResource(api, "bills", crudHandlers{
			list:   controllers.GetBills,
			get:    controllers.GetBill,
			create: controllers.CreateBill,
			update: controllers.UpdateBill,
			delete: controllers.DeleteBill,
		})

		registerResource(api, "assignments", crudHandlers{
			list:   controllers.GetAssignments,
			get:    controllers.GetAssignment,
			create: controllers.CreateAssignment,
			update: controllers.UpdateAssignment,
			delete: controllers.DeleteAssignment,
		})

		registerResource(api, "users", crudHandlers{
			list:   controllers.GetUsers,
			get:    controllers.GetUser,
			create: controllers.CreateUser,
			update: controllers.UpdateUser,
			delete: controllers.DeleteUser,
		})

		registerResource(api, "companies", crudHandlers{
			list:   controllers.GetCompanies,
			get:    controllers.GetCompany,
			create: controllers.CreateCompany,
			update: controllers.UpdateCompany,
			delete: controllers.DeleteCompany,
		})
	}

	return r
}
