package main

import (
	"os"
	"os/signal"
	"presensi/config"
	"presensi/services/attendance/delivery"
	"presensi/services/attendance/repository"
	"presensi/services/attendance/usecase"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("Error loading .env file")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatal("Failed to boot DB")
		return
	}

	meowClient, schoolPhone, err := config.InitSender()
	if err != nil {
		log.Fatalf("Failed to init sender: %v", err)
		return
	}

	userRepo := repository.NewUserRepository(db)
	tsRepo := repository.NewTeacherSubjectRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	senderRepo := repository.NewSenderRepository(db, *schoolPhone, meowClient)

	userUC := usecase.NewUserUseCase(userRepo, 10*time.Second)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, 10*time.Second)
	leaveUC := usecase.NewLeaveUseCase(leaveRepo, tsRepo, senderRepo, 10*time.Second)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello World!",
		})
	})

	delivery.NewUserHandler(app, userUC)
	delivery.NewAttendanceHandler(app, attendanceUC)
	delivery.NewLeaveHandler(app, leaveUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	meowClient.Disconnect()

	wg.Wait()
	log.Info("Server shut down gracefully")
}
