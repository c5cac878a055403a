package web

import (
	"time"

	"github.com/arnavgupta1/FF-Metrics/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/sheets", func(r chi.Router) {
		r.Get("/", listSheetsHandler(ctrl, render))
		r.Post("/", sheetUploadHandler(ctrl, render))
		r.Get("/{sheetID:\\d+}", getSheetHandler(ctrl, render))
		r.Get("/{sheetID:\\d+}/records", sheetRecordsHandler(ctrl, render))
		r.Delete("/{sheetID:\\d+}", deleteSheetHandler(ctrl, render))
	})

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", listLeaguesHandler(ctrl, render))
		r.Post("/", addLeagueHandler(ctrl, render))
		r.Get("/{leagueID:\\d+}", getLeagueHandler(ctrl, render))
		r.Post("/{leagueID:\\d+}/refresh", refreshLeagueHandler(ctrl, render))
		r.Post("/{leagueID:\\d+}/archive", archiveLeagueHandler(ctrl, render))

		r.Get("/{leagueID:\\d+}/draft", draftAnalysisHandler(ctrl, render))
		r.Get("/{leagueID:\\d+}/tiers", teamTiersHandler(ctrl, render))
		r.Get("/{leagueID:\\d+}/power", powerRankingsHandler(ctrl, render))
		r.Get("/{leagueID:\\d+}/players", playerValuesHandler(ctrl, render))
	})

	return r
}
