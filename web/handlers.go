package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arnavgupta1/FF-Metrics/controller"
	"github.com/arnavgupta1/FF-Metrics/db"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "ff-metrics")
	}
}

func listSheetsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheets, err := ctrl.ListSheets(r.Context())
		if err != nil {
			render.Text(w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, sheets)
	}
}

func sheetUploadHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse the multipart form. 5 << 20 specifies a maximum upload of 5 MB files.
		r.ParseMultipartForm(5 << 20)

		file, handler, err := r.FormFile("sheet-file")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}
		defer file.Close()

		if handler.Header.Get("Content-Type") != "text/csv" {
			msg := fmt.Sprintf("Only CSV files are supported. Got %s", handler.Header.Get("Content-Type"))
			render.Text(w, http.StatusBadRequest, msg)
			return
		}

		name := r.FormValue("sheet-name")
		if name == "" {
			name = handler.Filename
		}

		sheet, err := ctrl.AddSheet(r.Context(), name, file)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		render.JSON(w, http.StatusCreated, sheet)
	}
}

func getSheetHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "sheetID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		sheet, err := ctrl.GetSheet(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrSheetNotFound) {
				render.Text(w, http.StatusNotFound, "sheet not found")
			} else {
				render.Text(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, sheet)
	}
}

func sheetRecordsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "sheetID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		records, err := ctrl.ParseSheet(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrSheetNotFound) {
				render.Text(w, http.StatusNotFound, "sheet not found")
			} else {
				render.Text(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, records)
	}
}

func deleteSheetHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "sheetID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := ctrl.DeleteSheet(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrSheetNotFound) {
				render.Text(w, http.StatusNotFound, "sheet not found")
			} else {
				render.Text(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.Text(w, http.StatusOK, "deleted")
	}
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			render.Text(w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func addLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		externalID := r.PostForm.Get("league_id")
		if externalID == "" {
			render.Text(w, http.StatusBadRequest, "league_id is required")
			return
		}

		league, err := ctrl.AddLeague(r.Context(), externalID)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		render.JSON(w, http.StatusCreated, league)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "leagueID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		league, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				render.Text(w, http.StatusNotFound, "league not found")
			} else {
				render.Text(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, league)
	}
}

func refreshLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "leagueID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		league, err := ctrl.RefreshLeague(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				render.Text(w, http.StatusNotFound, "league not found")
			} else {
				render.Text(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, league)
	}
}

func archiveLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "leagueID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := ctrl.ArchiveLeague(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				render.Text(w, http.StatusNotFound, "league not found")
			} else {
				render.Text(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.Text(w, http.StatusOK, "archived")
	}
}

func draftAnalysisHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := parseID(r, "leagueID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}
		sheetID, err := sheetParam(r)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		analysis, err := ctrl.AnalyzeDraft(r.Context(), leagueID, sheetID)
		if err != nil {
			renderAnalysisError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, analysis)
	}
}

func teamTiersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := parseID(r, "leagueID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}
		sheetID, err := sheetParam(r)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		valuations, err := ctrl.TeamTiers(r.Context(), leagueID, sheetID)
		if err != nil {
			renderAnalysisError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, valuations)
	}
}

func powerRankingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := parseID(r, "leagueID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		teams, err := ctrl.PowerRankings(r.Context(), leagueID)
		if err != nil {
			renderAnalysisError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, teams)
	}
}

func playerValuesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := parseID(r, "leagueID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		values, err := ctrl.PlayerValues(r.Context(), leagueID)
		if err != nil {
			renderAnalysisError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, values)
	}
}

func renderAnalysisError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrSheetNotFound):
		render.Text(w, http.StatusNotFound, "sheet not found")
	case errors.Is(err, db.ErrLeagueNotFound):
		render.Text(w, http.StatusNotFound, "league not found")
	case errors.Is(err, controller.ErrNoDraft):
		render.Text(w, http.StatusNotFound, "no draft found for league")
	default:
		render.Text(w, http.StatusInternalServerError, err.Error())
	}
}

func parseID(r *http.Request, param string) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", param, err)
	}
	return int32(id), nil
}

func sheetParam(r *http.Request) (int32, error) {
	s := r.URL.Query().Get("sheet")
	if s == "" {
		return 0, errors.New("sheet query parameter is required")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("error parsing sheet id: %w", err)
	}
	return int32(id), nil
}
