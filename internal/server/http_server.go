package server

import (
	"context"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// DefaultMaxBodySize limits the size of a request body, in bytes
const DefaultMaxBodySize = 16 * 1024 * 1024

// HttpServer exposes the encoders over HTTP
type HttpServer struct {
	Address     string `yaml:"address"     short:"a" long:"address"       env:"ADDRESS"       description:"Address to listen on" default:"127.0.0.1:8064"`
	MaxBodySize int64  `yaml:"maxBodySize"           long:"max-body-size" env:"MAX_BODY_SIZE" description:"Maximum size of request body in bytes, 0 for unlimited" default:"16777216"`

	server   *http.Server
	listener net.Listener
	started  chan struct{}
}

func NewHttpServer() *HttpServer {
	return &HttpServer{
		Address:     "127.0.0.1:8064",
		MaxBodySize: DefaultMaxBodySize,
		started:     make(chan struct{}),
	}
}

// Started is closed once the server is listening. Only available on servers created with NewHttpServer.
func (ws *HttpServer) Started() <-chan struct{} {
	return ws.started
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return "http://" + ws.listener.Addr().String()
	}
	return "http://" + ws.Address
}

// Router sets up the routes and middleware. The address is only used for logging.
func (ws *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	router.Get("/encoders", encodersHandler)
	router.Post("/encode/{encoding}", ws.encodeHandler)
	router.Post("/decode/{encoding}", ws.decodeHandler)

	return router
}

// Startup starts listening and serves requests in the background
func (ws *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", ws.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	ws.listener = ln

	address, _ := ln.Addr().(*net.TCPAddr)
	ws.server = &http.Server{
		Handler: ws.Router(address),
	}

	if ws.started != nil {
		close(ws.started)
	}

	go func() {
		log.Infof("Starting HTTP server at %v", ws)
		if err := ws.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
