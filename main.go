package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/2008cattiger-cyber/miniature/cliparse"
	"github.com/2008cattiger-cyber/miniature/models"
	"github.com/2008cattiger-cyber/miniature/poll"
	"github.com/2008cattiger-cyber/miniature/router"
	"github.com/2008cattiger-cyber/miniature/store"
)

// logSender stands in for the real messaging transport: outbound
// prompts are logged and assigned synthetic message ids.
type logSender struct {
	nextID atomic.Int64
}

func (s *logSender) SendMessage(chatID int64, text string, markup [][]models.Button) (int64, error) {
	id := s.nextID.Add(1)
	slog.Info("outbound message",
		"chat_id", chatID,
		"message_id", id,
		"buttons", len(markup),
		"text", text,
	)
	return id, nil
}

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the configured store
	var st store.Store
	switch cfg.StoreType {
	case "json":
		st = store.NewJSONStore(cfg.DatabaseURL)
	default:
		driver := "sqlite"
		if cfg.StoreType == "postgres" {
			driver = "postgres"
		}
		dbConn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}
		if err := store.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		st = store.NewSQLStore(dbConn)
	}
	slog.Info("Store ready", "type", cfg.StoreType)

	// Wire the engine and the gateway
	engine := poll.NewEngine(st, &logSender{}, cfg)
	mux := router.NewRouter(engine)

	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
