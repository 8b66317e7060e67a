package deps

import (
	"log"

	"github.com/sobara/commentbox/config"
	"github.com/sobara/commentbox/internal/db"
	"github.com/sobara/commentbox/internal/http/captcha"
	"github.com/sobara/commentbox/internal/store"
	"github.com/sobara/commentbox/util/websockets"
)

type Dependencies struct {
	DB        *db.DB
	Store     store.CommentStore
	Captcha   *captcha.Client
	WebSocket *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	deps := Dependencies{
		Captcha:   captcha.New(cfg.CaptchaSecret, cfg.CaptchaVerifyURL),
		WebSocket: websockets.NewWebSocketManager(),
	}

	if cfg.Dsn == "" || cfg.Dsn == "memory" {
		log.Println("running on the in-memory comment store")
		deps.Store = store.NewInMemoryCommentStore()
		return &deps
	}

	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}
	deps.DB = database
	deps.Store = store.NewPostgresCommentStore(database.Pool())
	return &deps
}
