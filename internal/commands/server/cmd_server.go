package server

import (
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/server"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Command runs the HTTP server until interrupted
type Command struct {
	server.HttpServer `yaml:",inline"`
}

func NewCommand() *Command {
	return &Command{
		HttpServer: *server.NewHttpServer(),
	}
}

// Run starts the server and blocks until something arrives on the interrupted channel
func (s *Command) Run(interrupted <-chan os.Signal) error {
	if err := s.Startup(); err != nil {
		return err
	}

	<-interrupted
	log.Infof("Graceful server shutdown...")
	return s.Shutdown()
}

func (s *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	return s.Run(interrupted)
}
