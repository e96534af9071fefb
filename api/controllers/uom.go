package controllers

import (
	"net/http"

	"github.com/anagarciahdz/grocerhub-backend/api/responses"
	uomsvc "github.com/anagarciahdz/grocerhub-backend/internal/uom"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"github.com/anagarciahdz/grocerhub-backend/pkg/logger"
)

// ListUOM returns every unit of measurement.
func ListUOM(repo *uomsvc.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "uom repository unavailable"))
			return
		}

		units, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list uom"))
			return
		}

		out := make([]uomResponse, 0, len(units))
		for _, unit := range units {
			out = append(out, uomResponse{UomID: unit.UomID, UomName: unit.UomName})
		}
		responses.WriteSuccess(w, out)
	}
}

type uomResponse struct {
	UomID   int64  `json:"uom_id"`
	UomName string `json:"uom_name"`
}
