package routes

import (
	"net/http"
	"time"

	"garagedesk/handlers"
	"garagedesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the handlers wired up in main.
type HandlerBundle struct {
	Appointments *handlers.AppointmentHandler
	Technicians  *handlers.TechnicianHandler
	Accounts     *handlers.AccountHandler
	Reports      *handlers.ReportHandler
}

// RegisterRoutes attaches every endpoint to the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	appointments := r.Group("/api/appointments")
	{
		appointments.POST("", hb.Appointments.CreateAppointment)
		appointments.GET("/day/:date", hb.Appointments.GetDay)
		appointments.GET("/history/:reg", hb.Appointments.GetHistory)
		appointments.GET("/:id", hb.Appointments.GetAppointment)
		appointments.PUT("/:id", hb.Appointments.UpdateAppointment)
		appointments.DELETE("/:id", hb.Appointments.DeleteAppointment)
	}

	technicians := r.Group("/api/technicians")
	{
		technicians.GET("", hb.Technicians.ListTechnicians)
		technicians.POST("", hb.Technicians.CreateTechnician)
		technicians.PUT("/:id", hb.Technicians.UpdateTechnician)
		technicians.DELETE("/:id", hb.Technicians.DeleteTechnician)
	}

	accounts := r.Group("/api/accounts")
	{
		accounts.GET("", hb.Accounts.ListAccounts)
		accounts.POST("", hb.Accounts.CreateAccount)
		accounts.GET("/:id", hb.Accounts.GetAccount)
		accounts.PUT("/:id", hb.Accounts.UpdateAccount)
		accounts.DELETE("/:id", hb.Accounts.DeleteAccount)
	}

	reports := r.Group("/api/reports")
	{
		reports.GET("/hours", hb.Reports.GetTechnicianHours)
		reports.GET("/analytics", hb.Reports.GetAnalytics)
	}
}
