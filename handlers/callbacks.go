package handlers

import (
	"log/slog"
	"net/http"

	"github.com/2008cattiger-cyber/miniature/middleware"
	"github.com/2008cattiger-cyber/miniature/models"
	"github.com/2008cattiger-cyber/miniature/poll"
)

// CallbackHandler maps button-press events onto the engine.
type CallbackHandler struct {
	engine *poll.Engine
}

func NewCallbackHandler(engine *poll.Engine) *CallbackHandler {
	return &CallbackHandler{engine: engine}
}

// Callback handles POST /callbacks. The data field carries the button
// payload ("vote:<poll>:<idx>" or "vote_confirm:<poll>"); the reply is
// the acknowledgment string shown to the voter.
func (h *CallbackHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req models.CallbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voter := models.Voter{ID: req.InvokerID, Username: req.Username, Name: req.Name}
	reply, err := h.engine.HandleCallback(voter, req.Data)
	if err != nil {
		slog.Error("failed to handle callback", "error", err, "data", req.Data)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to handle callback")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: reply})
}
