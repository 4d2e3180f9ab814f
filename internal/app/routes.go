package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vancomm/minefield/internal/handlers"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/mines"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// newGenerator gives every session its own source.
func newGenerator() mines.Generator {
	return mines.NewBernoulli(createRand())
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.store, a.cookies, a.ws)

	a.router.Methods(http.MethodGet).Path("/status").HandlerFunc(handlers.Status)
	a.router.Methods(http.MethodGet).Path("/difficulties").HandlerFunc(game.Difficulties)

	gameRouter := a.router.PathPrefix("/game").Subrouter()
	gameRouter.Use(mux.MiddlewareFunc(middleware.Auth(a.logger, a.cookies)))
	gameRouter.Methods(http.MethodPost).Path("").HandlerFunc(game.NewGame)
	gameRouter.Methods(http.MethodGet).Path("/{id}").HandlerFunc(game.Fetch)
	gameRouter.Methods(http.MethodPost).Path("/{id}/move").HandlerFunc(game.Move)
	gameRouter.Methods(http.MethodPost).Path("/{id}/start").HandlerFunc(game.Start)
	gameRouter.Methods(http.MethodPost).Path("/{id}/reset").HandlerFunc(game.Reset)
	gameRouter.Methods(http.MethodGet).Path("/{id}/connect").HandlerFunc(game.ConnectWS)
}
