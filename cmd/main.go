package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sobara/commentbox/config"
	deps "github.com/sobara/commentbox/internal/debs"
	api "github.com/sobara/commentbox/internal/http/rest"
	"github.com/sobara/commentbox/util"
	smtp "github.com/sobara/commentbox/util/email"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	if !util.NotBlank(cfg.JwtSecret) {
		log.Println("JWT_SECRET is empty, direct moderation routes will reject all tokens")
	}
	if !util.IsEmail(cfg.ModeratorEmail) {
		log.Println("MODERATOR_EMAIL is not a valid address, moderation notifications are disabled")
	}

	mailer := smtp.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		Mailer: mailer,
	}
	a.Init()
	go deps.WebSocket.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if deps.DB != nil {
		deps.DB.Close()
		log.Println("Database connections closed.")
	}

	log.Fatal(a.Shutdown())
}
