package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/2008cattiger-cyber/miniature/middleware"
	"github.com/2008cattiger-cyber/miniature/models"
	"github.com/2008cattiger-cyber/miniature/poll"
)

// CommandHandler maps admin command events onto the engine.
type CommandHandler struct {
	engine *poll.Engine
}

func NewCommandHandler(engine *poll.Engine) *CommandHandler {
	return &CommandHandler{engine: engine}
}

// Vote handles POST /commands/vote
func (h *CommandHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.CommandRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.engine.Create(req.InvokerID, req.Text)
	if errors.Is(err, poll.ErrUnauthorized) {
		// Silent drop: no body, nothing reaches the invoker.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Results handles POST /commands/vote_results
func (h *CommandHandler) Results(w http.ResponseWriter, r *http.Request) {
	var req models.CommandRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	reply, err := h.engine.Results(req.InvokerID, req.Text)
	if errors.Is(err, poll.ErrUnauthorized) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("failed to render results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: reply})
}

// Close handles POST /commands/vote_close
func (h *CommandHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req models.CommandRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	reply, err := h.engine.Close(req.InvokerID, req.Text)
	if errors.Is(err, poll.ErrUnauthorized) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("failed to close poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: reply})
}

// Help handles POST /commands/help
func (h *CommandHandler) Help(w http.ResponseWriter, r *http.Request) {
	var req models.CommandRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	reply, err := h.engine.Help(req.InvokerID)
	if errors.Is(err, poll.ErrUnauthorized) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("failed to render help", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render help")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: reply})
}
