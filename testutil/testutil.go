package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/2008cattiger-cyber/miniature/cliparse"
	"github.com/2008cattiger-cyber/miniature/models"
	"github.com/2008cattiger-cyber/miniature/store"
)

// AdminID is the admin user configured by GetTestConfig.
const AdminID int64 = 42

// ChannelID is the default target channel configured by GetTestConfig.
const ChannelID int64 = -1001234567890

// NewStore returns a JSONStore rooted in a per-test temp dir.
func NewStore(t *testing.T) *store.JSONStore {
	t.Helper()
	return store.NewJSONStore(filepath.Join(t.TempDir(), "votes.json"))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		AdminID:      AdminID,
		ChannelID:    ChannelID,
		VoteMode:     models.ModeMulti,
		PollDuration: 7 * 24 * time.Hour,
		StoreType:    "json",
	}
}

// SentMessage is one message captured by FakeSender.
type SentMessage struct {
	ChatID int64
	Text   string
	Markup [][]models.Button
}

// FakeSender records outbound messages and hands out sequential
// message ids. Set Err to make sends fail.
type FakeSender struct {
	mu       sync.Mutex
	Err      error
	Messages []SentMessage
}

func (s *FakeSender) SendMessage(chatID int64, text string, markup [][]models.Button) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Messages = append(s.Messages, SentMessage{ChatID: chatID, Text: text, Markup: markup})
	return int64(len(s.Messages)), nil
}

// MakeTestPoll builds an open multi-mode poll with three options.
func MakeTestPoll(id string) *models.Poll {
	now := time.Now().Unix()
	return &models.Poll{
		ID:        id,
		Question:  "Best color",
		Options:   []string{"Red", "Blue", "Green"},
		Mode:      models.ModeMulti,
		CreatedAt: now,
		EndAt:     now + 604800,
		ChatID:    ChannelID,
		MessageID: 1,
		Votes:     make(map[string]models.VoteSet),
		Drafts:    make(map[string][]int),
		Confirmed: make(map[string]bool),
		Users:     make(map[string]models.UserInfo),
	}
}

// SeedPoll writes a poll into the store.
func SeedPoll(t *testing.T, st store.Store, p *models.Poll) {
	t.Helper()
	state, err := st.Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	state.Polls[p.ID] = p
	if err := st.Save(state); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}
}

// LoadPoll reads one poll back from the store.
func LoadPoll(t *testing.T, st store.Store, id string) *models.Poll {
	t.Helper()
	state, err := st.Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	p, ok := state.Polls[id]
	if !ok {
		t.Fatalf("Poll %s not in store", id)
	}
	return p
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
