package controllers

import (
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/utils"
	"net/http"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, nil)
}
