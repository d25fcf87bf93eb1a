package main

import (
	"frontdesk/cmd/internal/config"
	"frontdesk/cmd/internal/domain/sqlite"
	"frontdesk/cmd/internal/domain/sqlite/repository"
	"frontdesk/cmd/internal/routes"
	"frontdesk/cmd/internal/schedule"
	"frontdesk/cmd/internal/service"
	"frontdesk/cmd/internal/utils/validators"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}
	cfg := config.Load()

	validate := validator.New()
	registerValidators(validate)

	loc, err := time.LoadLocation(cfg.TimezoneID)
	if err != nil {
		log.Fatal("invalid business timezone", err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	apptRepo := repository.NewAppointmentRepository(db)
	apptService := service.NewAppointmentService(
		apptRepo,
		schedule.NewNormalizer(loc),
		schedule.NewCalendar(loc),
		validate,
		cfg.TZLabel,
	)
	apptRoutes := routes.NewAppointmentDefault(apptService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())

	// Assistant tool-call endpoints
	e.POST("/new-appointment", apptRoutes.NewAppointment)
	e.POST("/get-appointment", apptRoutes.GetAppointment)
	e.POST("/cancel-appointment", apptRoutes.CancelAppointment)
	e.POST("/reschedule-appointment", apptRoutes.RescheduleAppointment)
	e.POST("/next-available-slots", apptRoutes.NextAvailableSlots)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	err = e.Start(":" + cfg.Port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("clocktime", validators.IsClockTime)
}
