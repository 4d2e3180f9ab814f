package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/session"
)

type App struct {
	logger   *slog.Logger
	router   *mux.Router
	store    *session.Store
	cookies  *config.Cookies
	ws       *config.WebSocket
	sessions *config.Sessions
}

func New(
	logger *slog.Logger,
	cookies *config.Cookies,
	ws *config.WebSocket,
	sessions *config.Sessions,
) *App {
	app := &App{
		logger:   logger,
		router:   mux.NewRouter(),
		cookies:  cookies,
		ws:       ws,
		sessions: sessions,
		store: session.NewStore(logger, newGenerator, session.Options{
			TTL:   sessions.TTL,
			Limit: sessions.Limit,
		}),
	}

	app.loadRoutes()

	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(),
	)
}

// Start serves on addr and runs the session janitor until ctx is done.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:        addr,
		Handler:     a.Handler(),
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return a.store.RunJanitor(gCtx, a.sessions.JanitorInterval)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
