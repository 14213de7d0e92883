package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2008cattiger-cyber/miniature/models"
	"github.com/2008cattiger-cyber/miniature/poll"
	"github.com/2008cattiger-cyber/miniature/store"
	"github.com/2008cattiger-cyber/miniature/testutil"
)

func newCommandHandler(t *testing.T) (*CommandHandler, *store.JSONStore) {
	t.Helper()
	st := testutil.NewStore(t)
	engine := poll.NewEngine(st, &testutil.FakeSender{}, testutil.GetTestConfig())
	return NewCommandHandler(engine), st
}

func TestVoteCommand(t *testing.T) {
	h, st := newCommandHandler(t)

	req := testutil.MakeRequest("POST", "/commands/vote", models.CommandRequest{
		InvokerID: testutil.AdminID,
		Text:      "/vote Best color | Red | Blue",
	})
	w := httptest.NewRecorder()
	h.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.CreatePollResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.PollID) != 8 {
		t.Errorf("Expected 8-char poll id, got %q", resp.PollID)
	}
	testutil.LoadPoll(t, st, resp.PollID)
}

func TestVoteCommandNonAdmin(t *testing.T) {
	h, st := newCommandHandler(t)

	req := testutil.MakeRequest("POST", "/commands/vote", models.CommandRequest{
		InvokerID: 99,
		Text:      "/vote Best color | Red | Blue",
	})
	w := httptest.NewRecorder()
	h.Vote(w, req)

	// Unauthorized invokers get nothing back at all
	testutil.AssertStatus(t, w, http.StatusNoContent)
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
	state, _ := st.Load()
	if len(state.Polls) != 0 {
		t.Error("Non-admin request must not create a poll")
	}
}

func TestVoteCommandInvalidJSON(t *testing.T) {
	h, _ := newCommandHandler(t)

	req := httptest.NewRequest("POST", "/commands/vote", strings.NewReader("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Invalid JSON" {
		t.Errorf("Expected Invalid JSON error, got %q", resp.Message)
	}
}

func TestVoteCommandUsageHint(t *testing.T) {
	h, _ := newCommandHandler(t)

	req := testutil.MakeRequest("POST", "/commands/vote", models.CommandRequest{
		InvokerID: testutil.AdminID,
		Text:      "/vote Best color",
	})
	w := httptest.NewRecorder()
	h.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.CreatePollResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.PollID != "" {
		t.Errorf("Malformed command must not create a poll, got id %q", resp.PollID)
	}
	if resp.Message != poll.UsageCreate {
		t.Errorf("Expected usage hint, got %q", resp.Message)
	}
}

func TestResultsCommand(t *testing.T) {
	h, st := newCommandHandler(t)
	testutil.SeedPoll(t, st, testutil.MakeTestPoll("p1"))

	req := testutil.MakeRequest("POST", "/commands/vote_results", models.CommandRequest{
		InvokerID: testutil.AdminID,
		Text:      "/vote_results p1",
	})
	w := httptest.NewRecorder()
	h.Results(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.Contains(resp.Message, "Poll ID: p1") {
		t.Errorf("Expected report, got %q", resp.Message)
	}
}

func TestResultsCommandNonAdmin(t *testing.T) {
	h, _ := newCommandHandler(t)

	req := testutil.MakeRequest("POST", "/commands/vote_results", models.CommandRequest{
		InvokerID: 99,
		Text:      "/vote_results",
	})
	w := httptest.NewRecorder()
	h.Results(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)
}

func TestCloseCommand(t *testing.T) {
	h, st := newCommandHandler(t)
	testutil.SeedPoll(t, st, testutil.MakeTestPoll("p1"))

	req := testutil.MakeRequest("POST", "/commands/vote_close", models.CommandRequest{
		InvokerID: testutil.AdminID,
		Text:      "/vote_close p1",
	})
	w := httptest.NewRecorder()
	h.Close(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if p := testutil.LoadPoll(t, st, "p1"); !p.Closed {
		t.Error("Close request must persist the closed flag")
	}
}

func TestHelpCommand(t *testing.T) {
	h, _ := newCommandHandler(t)

	req := testutil.MakeRequest("POST", "/commands/help", models.CommandRequest{
		InvokerID: testutil.AdminID,
	})
	w := httptest.NewRecorder()
	h.Help(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.Contains(resp.Message, "/vote") {
		t.Errorf("Expected command list, got %q", resp.Message)
	}
}
