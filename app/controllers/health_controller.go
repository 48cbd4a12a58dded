package controllers

import (
	"net/http"
	"time"
)

type HealthController struct{}

func NewHealthController() *HealthController { return &HealthController{} }

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "backend",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
