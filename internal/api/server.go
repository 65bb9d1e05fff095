/*
server.go - HTTP router, middleware and server transports

ROUTES:

	GET    /                          calculator page
	GET    /api/states                state names and flat rates
	POST   /api/taxes                 tax breakdown for one income
	POST   /api/growth                yearly projection of a fixed contribution
	POST   /api/milestones            years to each portfolio milestone
	POST   /api/plan                  full plan from form-style input
	GET    /api/report/{format}       rendered report (console, csv, html, json, pdf...)
	GET    /api/profiles              saved profiles
	POST   /api/profiles              save a profile
	GET    /api/profiles/{name}       one saved profile
	DELETE /api/profiles/{name}       remove a saved profile
	GET    /api/profiles/{name}/plan  plan for a saved profile

TRANSPORTS:

	Serve runs the router on net/http. ServeFast runs the same router on
	valyala/fasthttp through fasthttpadaptor.
*/
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// RouterOptions configures middleware
type RouterOptions struct {
	AllowedOrigins []string
	// RequestLog receives one line per request; nil uses the standard logger
	RequestLog *log.Logger
}

func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	if opts.RequestLog != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: opts.RequestLog, NoColor: true}))
	} else {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.Index)

	r.Route("/api", func(r chi.Router) {
		r.Get("/states", h.ListStates)
		r.Post("/taxes", h.CalculateTaxes)
		r.Post("/growth", h.ProjectGrowth)
		r.Post("/milestones", h.FindMilestones)
		r.Post("/plan", h.RunPlan)
		r.Get("/report/{format}", h.GenerateReport)

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", h.ListProfiles)
			r.Post("/", h.SaveProfile)
			r.Get("/{name}", h.GetProfile)
			r.Delete("/{name}", h.DeleteProfile)
			r.Get("/{name}/plan", h.GetProfilePlan)
		})
	})

	return r
}

// Serve runs handler on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// ServeFast is Serve on the fasthttp transport.
func ServeFast(ctx context.Context, addr string, handler http.Handler) error {
	srv := &fasthttp.Server{
		Handler:     fasthttpadaptor.NewFastHTTPHandler(handler),
		Name:        "money-for-life",
		ReadTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(addr)
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.ShutdownWithContext(shutdownCtx)
}
