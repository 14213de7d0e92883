package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/2008cattiger-cyber/miniature/models"
	"github.com/2008cattiger-cyber/miniature/poll"
	"github.com/2008cattiger-cyber/miniature/testutil"
)

// TestConcurrentVoteSubmissions verifies that simultaneous button presses
// from different voters don't lose updates on the shared state document
func TestConcurrentVoteSubmissions(t *testing.T) {
	st := testutil.NewStore(t)
	engine := poll.NewEngine(st, &testutil.FakeSender{}, testutil.GetTestConfig())
	h := NewCallbackHandler(engine)

	testutil.SeedPoll(t, st, testutil.MakeTestPoll("p1"))

	numVoters := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	// Every voter toggles an option and confirms, all at once
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			userID := int64(100 + voterIdx)
			username := fmt.Sprintf("voter%d", voterIdx)

			for _, data := range []string{
				fmt.Sprintf("vote:p1:%d", voterIdx%3),
				"vote_confirm:p1",
			} {
				req := testutil.MakeRequest("POST", "/callbacks", models.CallbackRequest{
					InvokerID: userID,
					Username:  username,
					Data:      data,
				})
				w := httptest.NewRecorder()
				h.Callback(w, req)
				if w.Code != http.StatusOK {
					return
				}
			}
			successCount.Add(1)
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful vote flows, got %d", numVoters, successCount.Load())
	}

	// Every voter's confirmed vote must have survived
	p := testutil.LoadPoll(t, st, "p1")
	if len(p.Votes) != numVoters {
		t.Errorf("Expected %d recorded votes, got %d (lost update)", numVoters, len(p.Votes))
	}
	if len(p.Confirmed) != numVoters {
		t.Errorf("Expected %d confirmations, got %d", numVoters, len(p.Confirmed))
	}
	for i := 0; i < numVoters; i++ {
		key := fmt.Sprintf("%d", 100+i)
		votes, ok := p.Votes[key]
		if !ok {
			t.Errorf("Vote from user %s missing", key)
			continue
		}
		if len(votes) != 1 || votes[0] != i%3 {
			t.Errorf("User %s vote is %v, want [%d]", key, votes, i%3)
		}
	}
}

// TestConcurrentConfirmRace verifies that a voter hammering the confirm
// button gets exactly one recorded vote
func TestConcurrentConfirmRace(t *testing.T) {
	st := testutil.NewStore(t)
	engine := poll.NewEngine(st, &testutil.FakeSender{}, testutil.GetTestConfig())
	h := NewCallbackHandler(engine)

	testutil.SeedPoll(t, st, testutil.MakeTestPoll("p1"))

	// Build a draft first
	w := pressButton(t, h, 7, "vote:p1:1")
	testutil.AssertStatus(t, w, http.StatusOK)

	numAttempts := 5
	var counted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/callbacks", models.CallbackRequest{
				InvokerID: 7,
				Username:  "alice",
				Data:      "vote_confirm:p1",
			})
			w := httptest.NewRecorder()
			h.Callback(w, req)
			var resp models.MessageResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				return
			}
			if resp.Message == poll.MsgVoteCounted {
				counted.Add(1)
			}
		}()
	}

	wg.Wait()

	// Exactly one press lands; the rest bounce off the confirmed flag
	if counted.Load() != 1 {
		t.Errorf("Expected exactly 1 counted confirm, got %d", counted.Load())
	}
	p := testutil.LoadPoll(t, st, "p1")
	if len(p.Votes["7"]) != 1 {
		t.Errorf("Vote is %v, want a single option", p.Votes["7"])
	}
}
