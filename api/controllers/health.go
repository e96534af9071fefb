package controllers

import (
	"net/http"

	"github.com/anagarciahdz/grocerhub-backend/api/responses"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db"
	"github.com/anagarciahdz/grocerhub-backend/pkg/logger"
)

// Health reports process and database liveness. The endpoint always answers
// 200 so load balancers can distinguish "up but db down" from "down".
func Health(pinger db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]string{
			"status":   "healthy",
			"app":      "running",
			"database": "disconnected",
		}

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "health: database ping failed")
				}
				response["status"] = "degraded"
			} else {
				response["database"] = "connected"
			}
		}

		responses.WriteSuccess(w, response)
	}
}
