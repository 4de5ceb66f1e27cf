package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"aiobackend/internal/database"
	"aiobackend/internal/utils"
)

type CommonHandler struct {
	db database.Service
}

// NewCommonHandler accepts a nil db service; the diagnostic endpoint then
// reports the store as unavailable instead of failing.
func NewCommonHandler(db database.Service) *CommonHandler {
	return &CommonHandler{db: db}
}

func (h *CommonHandler) HelloWorldHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the backend!",
	})
}

func (h *CommonHandler) HelloAPIHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the backend API!",
	})
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{
			"message": "db down",
			"error":   "document store not configured",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.db.Health())
}

// diagnosticReport mirrors the status payload the frontend showcase reads.
type diagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticHandler reports store availability. Every failure path is caught
// and turned into a descriptive string; the endpoint never answers 5xx.
func (h *CommonHandler) DiagnosticHandler(w http.ResponseWriter, r *http.Request) {
	report := diagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.db != nil {
		report.Database = h.probeDatabase(&report)
	}

	report.DatabaseURL = envMarker("DATABASE_URL")
	report.DatabaseName = envMarker("DATABASE_NAME")

	utils.RespondWithJSON(w, http.StatusOK, &report)
}

func (h *CommonHandler) probeDatabase(report *diagnosticReport) string {
	if h.db.Client() == nil {
		return "⚠️ Available but not initialized"
	}

	health := h.db.Health()
	if errText, down := health["error"]; down {
		return "❌ Error: " + truncate(errText, 50)
	}
	report.ConnectionStatus = "Connected"

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	names, err := h.db.Database().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return "⚠️ Connected but Error: " + truncate(err.Error(), 50)
	}
	if len(names) > 10 {
		names = names[:10]
	}
	report.Collections = names
	return "✅ Connected & Working"
}

func envMarker(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate shortens s to at most n characters, never splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
