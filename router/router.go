package router

import (
	"net/http"

	"github.com/2008cattiger-cyber/miniature/handlers"
	"github.com/2008cattiger-cyber/miniature/middleware"
	"github.com/2008cattiger-cyber/miniature/poll"
)

func NewRouter(engine *poll.Engine) *http.ServeMux {
	mux := http.NewServeMux()

	commandHandler := handlers.NewCommandHandler(engine)
	callbackHandler := handlers.NewCallbackHandler(engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin commands
	mux.HandleFunc("POST /commands/vote", middleware.WithLogging(commandHandler.Vote))
	mux.HandleFunc("POST /commands/vote_results", middleware.WithLogging(commandHandler.Results))
	mux.HandleFunc("POST /commands/vote_close", middleware.WithLogging(commandHandler.Close))
	mux.HandleFunc("POST /commands/help", middleware.WithLogging(commandHandler.Help))

	// Voter button presses
	mux.HandleFunc("POST /callbacks", middleware.WithLogging(callbackHandler.Callback))

	return mux
}
