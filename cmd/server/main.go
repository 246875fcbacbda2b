// Command server runs the maze search REST API.
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tolmaren/gridsearch/bench"
	"github.com/tolmaren/gridsearch/viz"
)

// config holds the server's configuration values.
type config struct {
	Addr        string // Address to listen on
	GinMode     string // Mode for the Gin framework (e.g., release, debug, test)
	HistoryFile string // Path of the benchmark history log
}

// loadConfig reads configuration from the environment, with a .env file
// if one is present.
func loadConfig() config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return config{
		Addr:        getEnvWithDefault("SERVER_ADDR", ":8080"),
		GinMode:     getEnvWithDefault("GIN_MODE", "release"),
		HistoryFile: getEnvWithDefault("HISTORY_FILE", "benchmark_history.json"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or
// returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	gin.SetMode(cfg.GinMode)

	history, err := bench.NewHistory(cfg.HistoryFile)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Opening history log: %v", err)
	}

	controller := viz.NewMazeController(viz.NewStore(), history)
	router := viz.NewRouter(viz.Config{
		Addr:        cfg.Addr,
		BaseURL:     "/api",
		Controllers: []viz.Controller{controller},
	})

	log.Printf("[APP] [INFO] Listening on %s", cfg.Addr)
	if err := router.Run(); err != nil {
		log.Fatalf("[APP] [FATAL] Running HTTP server: %v", err)
	}
}
