package main

import (
	"context"
	"flag"
	"log"
	"os"

	"CareHub360/audit"
	"CareHub360/config"
	"CareHub360/fixtures"
	"CareHub360/jobs"
	"CareHub360/metrics"
	"CareHub360/migrations"
	"CareHub360/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "load doctor fixtures and exit")
	migrate := flag.Bool("migrate", false, "run data migrations and exit")
	flag.Parse()
	run(*seed, *migrate)
}

func run(seed, migrate bool) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if err := config.ConnectDB(); err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer config.DisconnectDB(context.Background())

	if seed {
		if err := fixtures.LoadDoctors(context.Background()); err != nil {
			log.Fatal("Error loading fixtures: ", err)
		}
		return
	}
	if migrate {
		migrations.DedupeAvailabilityDates()
		migrations.NormalizeUserEmails()
		return
	}

	config.InitCache()
	audit.Init(os.Getenv("AUDIT_DB_PATH"))
	metrics.Register()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	jobs.StartDailyScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting server: ", err)
	}
}
