package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sobara/commentbox/config"
	deps "github.com/sobara/commentbox/internal/debs"
	"github.com/sobara/commentbox/internal/moderation"
	smtp "github.com/sobara/commentbox/util/email"
	"github.com/sobara/commentbox/util/values"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server     *http.Server
	Config     *config.Config
	Deps       *deps.Dependencies
	Mailer     *smtp.Mailer
	Moderation *moderation.Processor
}

// Init wires the pieces that depend on both config and store.
func (api *API) Init() {
	api.Moderation = moderation.NewProcessor(api.Deps.Store, api.Config.ModeratorEmail)
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Hello, World!"))
		},
	)

	mux.Mount("/comments", api.CommentRoutes())
	mux.Mount("/moderation", api.ModerationRoutes())

	return mux
}

func (a *API) Shutdown() error {
	err := a.Server.Shutdown(context.Background())
	if err != nil {
		return err
	}
	return nil
}
