package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"fuellogger/internal/api"
	"fuellogger/internal/repository"
	"fuellogger/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := repository.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	carHandler := api.NewCarHandler(service.NewCarService(repository.NewCarRepository(db)))
	fuelLogHandler := api.NewFuelLogHandler(service.NewFuelLogService(repository.NewFuelLogRepository(db)))
	serviceLogHandler := api.NewServiceLogHandler(service.NewServiceLogService(repository.NewServiceLogRepository(db)))
	statsHandler := api.NewStatsHandler(service.NewStatsService(repository.NewStatsRepository(db)))

	r := mux.NewRouter()

	r.HandleFunc("/api/cars", carHandler.ListCars).Methods("GET")
	r.HandleFunc("/api/cars", carHandler.CreateCar).Methods("POST")
	r.HandleFunc("/api/cars/{id}", carHandler.DeleteCar).Methods("DELETE")

	r.HandleFunc("/api/logs", fuelLogHandler.ListFuelLogs).Methods("GET")
	r.HandleFunc("/api/logs", fuelLogHandler.CreateFuelLog).Methods("POST")
	r.HandleFunc("/api/logs/{id}", fuelLogHandler.DeleteFuelLog).Methods("DELETE")

	r.HandleFunc("/api/stats", statsHandler.GetStats).Methods("GET")

	r.HandleFunc("/api/services", serviceLogHandler.ListServiceLogs).Methods("GET")
	r.HandleFunc("/api/services", serviceLogHandler.CreateServiceLog).Methods("POST")
	r.HandleFunc("/api/services/{id}", serviceLogHandler.DeleteServiceLog).Methods("DELETE")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}
