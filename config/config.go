package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	DataDir          string
	ReservationsFile string // general store: every reservation
	AgentFile        string // agent store: bookings made through agents
	CardsFile        string // one saved card per passenger
	FlightsFile      string // flight directory, synced from the ops system
	RabbitURL        string // empty disables the broker
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dataDir := getEnv("DATA_DIR", "data")
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DataDir:          dataDir,
		ReservationsFile: getEnv("RESERVATIONS_FILE", filepath.Join(dataDir, "reservations.json")),
		AgentFile:        getEnv("AGENT_RESERVATIONS_FILE", filepath.Join(dataDir, "agent_reservations.json")),
		CardsFile:        getEnv("CARDS_FILE", filepath.Join(dataDir, "cards.json")),
		FlightsFile:      getEnv("FLIGHTS_FILE", filepath.Join(dataDir, "flights.json")),
		RabbitURL:        os.Getenv("RABBIT_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
