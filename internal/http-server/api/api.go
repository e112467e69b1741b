package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"HotelOS/internal/config"
	"HotelOS/internal/http-server/handlers/assistant"
	"HotelOS/internal/http-server/handlers/documents"
	"HotelOS/internal/http-server/handlers/errors"
	"HotelOS/internal/http-server/handlers/messaging"
	"HotelOS/internal/http-server/handlers/session"
	"HotelOS/internal/http-server/handlers/settings"
	"HotelOS/internal/http-server/handlers/stats"
	"HotelOS/internal/http-server/handlers/users"
	"HotelOS/internal/http-server/handlers/view"
	"HotelOS/internal/http-server/middleware/authenticate"
	"HotelOS/internal/http-server/middleware/timeout"
	"HotelOS/internal/lib/sl"
	"HotelOS/internal/ws"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	view.Core
	session.Core
	documents.Core
	messaging.Core
	settings.Core
	stats.Core
	assistant.Core
	users.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	// The websocket feed authenticates by query token and outlives the
	// request timeout, so it sits outside the middleware chain.
	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, handler, log, w, r)
	})

	router.Group(func(api chi.Router) {
		api.Use(timeout.Timeout(15))
		api.Use(render.SetContentType(render.ContentTypeJSON))
		api.Use(authenticate.New(log, handler))

		api.NotFound(errors.NotFound(log))
		api.MethodNotAllowed(errors.NotAllowed(log))

		api.Route("/api/v1", func(v1 chi.Router) {
			v1.Get("/view", view.GetView(log, handler))

			v1.Route("/session", func(r chi.Router) {
				r.Post("/start", session.Start(log, handler))
				r.Post("/end", session.End(log, handler))
			})
			v1.Route("/collections/{collection}", func(r chi.Router) {
				r.Post("/", documents.Save(log, handler))
				r.Post("/batch", documents.SaveBatch(log, handler))
				r.Delete("/{id}", documents.Delete(log, handler))
			})
			v1.Route("/messaging", func(r chi.Router) {
				r.Get("/channels", messaging.Channels(log, handler))
				r.Post("/send", messaging.Send(log, handler))
				r.Post("/read", messaging.Read(log, handler))
			})
			v1.Route("/settings", func(r chi.Router) {
				r.Post("/business-config", settings.UpdateBusinessConfig(log, handler))
				r.Post("/laundry", settings.UpdateLaundry(log, handler))
				r.Post("/recipes", settings.UpdateRecipes(log, handler))
				r.Post("/ratio-items", settings.UpdateRatioItems(log, handler))
				r.Post("/ratio-categories", settings.UpdateRatioCategories(log, handler))
				r.Post("/catalog", settings.UpdateCatalog(log, handler))
				r.Post("/venues", settings.UpdateVenues(log, handler))
			})
			v1.Get("/stats", stats.Overview(log, handler))
			v1.Route("/assistant", func(r chi.Router) {
				r.Post("/ask", assistant.Ask(log, handler))
				r.Post("/reset", assistant.Reset(log, handler))
			})
			v1.Get("/users", users.List(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
