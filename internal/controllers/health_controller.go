package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"streamsched/internal/services"
	"time"
)

type HealthController struct {
	service   services.ScheduleServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status         string  `json:"status"`
	Uptime         string  `json:"uptime"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	Dirty          bool    `json:"dirty"`
	StoreReachable bool    `json:"store_reachable"`
	Days           int     `json:"days"`
	Streams        int     `json:"streams"`
}

// Health reports "degraded" while the settings store is unreachable. The
// daemon keeps serving the working schedule either way.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	state := hc.service.State()
	status := "ok"
	if !state.StoreReachable {
		status = "degraded"
	}
	resp := healthResponse{
		Status:         status,
		Uptime:         formatDuration(uptime),
		UptimeSeconds:  uptime.Seconds(),
		Dirty:          state.Dirty,
		StoreReachable: state.StoreReachable,
		Days:           state.Days,
		Streams:        state.Streams,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.ScheduleServiceInterface) *HealthController {
	return &HealthController{
		service:   service,
		startTime: time.Now(),
	}
}
