package poll

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/2008cattiger-cyber/miniature/auth"
	"github.com/2008cattiger-cyber/miniature/cliparse"
	"github.com/2008cattiger-cyber/miniature/models"
	"github.com/2008cattiger-cyber/miniature/store"
)

// ErrUnauthorized means a non-admin invoked an admin-only operation.
// By policy the caller emits nothing at all in response.
var ErrUnauthorized = errors.New("unauthorized")

// User-facing acknowledgment strings. Rule violations are replies, not
// errors: every interaction resolves to a message for the voter.
const (
	MsgAdded            = "Added to selection."
	MsgRemoved          = "Removed from selection."
	MsgAlreadyVoted     = "You already voted."
	MsgEmptySelection   = "Select at least one option."
	MsgVoteCounted      = "Your vote has been counted."
	MsgVoteRecorded     = "Vote recorded."
	MsgPollClosed       = "Poll is closed."
	MsgPollNotFound     = "Poll not found."
	MsgInvalidOption    = "Invalid option."
	MsgInvalidCallback  = "Invalid vote data."
	MsgNoPolls          = "No polls found."
	MsgNoChannelPolls   = "No polls found for that channel."
	MsgNoDefaultChannel = "Default channel is not configured."
)

const (
	UsageCreate = "Usage: /vote Question | Option 1 | Option 2\n" +
		"Optional: /vote channel -1001234567890 Question | Option 1 | Option 2"
	UsageResults = "Usage: /vote_results [POLL_ID]\n" +
		"Optional: /vote_results channel -1001234567890"
	UsageClose = "Usage: /vote_close POLL_ID\n" +
		"Optional: /vote_close channel -1001234567890"
)

const helpText = "Available commands:\n" +
	"/help\n" +
	"/vote Question | Option 1 | Option 2\n" +
	"/vote channel -1001234567890 Question | Option 1 | Option 2\n" +
	"/vote_results\n" +
	"/vote_results POLL_ID\n" +
	"/vote_results channel -1001234567890\n" +
	"/vote_close POLL_ID\n" +
	"/vote_close channel -1001234567890"

// Engine owns the poll lifecycle: creation, draft/confirm voting,
// lazy expiry, closing, and results. Every mutating operation runs a
// full load-mutate-save cycle against the store; mu serializes those
// cycles so concurrent interactions cannot clobber each other's saves.
type Engine struct {
	store  store.Store
	sender models.Sender
	cfg    cliparse.Config
	mu     sync.Mutex
	now    func() time.Time
}

func NewEngine(st store.Store, sender models.Sender, cfg cliparse.Config) *Engine {
	return &Engine{store: st, sender: sender, cfg: cfg, now: time.Now}
}

func (e *Engine) denied(invokerID int64, command string) error {
	slog.Warn("admin command denied", "invoker_id", invokerID, "command", command)
	return ErrUnauthorized
}

// Create parses a /vote command, posts the poll prompt to the resolved
// target, and persists the new poll. Admin only.
func (e *Engine) Create(invokerID int64, text string) (models.CreatePollResponse, error) {
	if !auth.IsAdmin(invokerID, e.cfg.AdminID) {
		return models.CreatePollResponse{}, e.denied(invokerID, "vote")
	}

	cmd, err := ParseCreate(text)
	if errors.Is(err, ErrParse) {
		return models.CreatePollResponse{Message: UsageCreate}, nil
	}
	if err != nil {
		return models.CreatePollResponse{}, err
	}

	target := e.cfg.ChannelID
	if cmd.HasChannel {
		target = cmd.ChannelID
	}
	if target == 0 {
		return models.CreatePollResponse{Message: MsgNoDefaultChannel}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	p := &models.Poll{
		ID:        auth.NewPollID(),
		Question:  cmd.Question,
		Options:   cmd.Options,
		Mode:      e.cfg.VoteMode,
		CreatedAt: now.Unix(),
		EndAt:     now.Add(e.cfg.PollDuration).Unix(),
		ChatID:    target,
		Votes:     make(map[string]models.VoteSet),
		Drafts:    make(map[string][]int),
		Confirmed: make(map[string]bool),
		Users:     make(map[string]models.UserInfo),
	}

	promptText, markup := BuildPrompt(p)
	messageID, err := e.sender.SendMessage(target, promptText, markup)
	if err != nil {
		return models.CreatePollResponse{}, fmt.Errorf("failed to post poll: %w", err)
	}
	p.MessageID = messageID

	state, err := e.store.Load()
	if err != nil {
		return models.CreatePollResponse{}, err
	}
	state.Polls[p.ID] = p
	if err := e.store.Save(state); err != nil {
		return models.CreatePollResponse{}, err
	}

	slog.Info("poll created", "poll_id", p.ID, "chat_id", target, "mode", p.Mode)
	return models.CreatePollResponse{
		PollID:  p.ID,
		Message: "Poll created. Poll ID: " + p.ID,
	}, nil
}

// HandleCallback routes a raw button payload to a toggle or confirm.
func (e *Engine) HandleCallback(voter models.Voter, data string) (string, error) {
	cmd, err := ParseCallback(data)
	if err != nil {
		return MsgInvalidCallback, nil
	}
	if cmd.Confirm {
		return e.Confirm(cmd.PollID, voter)
	}
	return e.Toggle(cmd.PollID, cmd.OptionIndex, voter)
}

// Toggle handles an option press. In multi mode it flips the option's
// membership in the voter's draft; in single mode it records the vote
// immediately, overwriting any prior choice.
func (e *Engine) Toggle(pollID string, optionIndex int, voter models.Voter) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, err := e.store.Load()
	if err != nil {
		return "", err
	}
	p, ok := state.Polls[pollID]
	if !ok {
		return MsgPollNotFound, nil
	}

	if closed, err := e.checkClosed(state, p); closed || err != nil {
		if err != nil {
			return "", err
		}
		return MsgPollClosed, nil
	}

	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return MsgInvalidOption, nil
	}

	ensureMaps(p)
	key := strconv.FormatInt(voter.ID, 10)

	if p.Mode == models.ModeSingle {
		// Last write wins in single mode.
		p.Votes[key] = models.VoteSet{optionIndex}
		p.Confirmed[key] = true
		p.Users[key] = snapshot(voter)
		if err := e.store.Save(state); err != nil {
			return "", err
		}
		slog.Info("vote recorded", "poll_id", pollID, "user_id", key, "option", optionIndex)
		return MsgVoteRecorded, nil
	}

	if p.Confirmed[key] {
		return MsgAlreadyVoted, nil
	}

	draft := p.Drafts[key]
	reply := MsgAdded
	if i := indexOf(draft, optionIndex); i >= 0 {
		draft = append(draft[:i], draft[i+1:]...)
		reply = MsgRemoved
	} else {
		draft = append(draft, optionIndex)
		sort.Ints(draft)
	}
	p.Drafts[key] = draft
	p.Users[key] = snapshot(voter)

	if err := e.store.Save(state); err != nil {
		return "", err
	}
	slog.Info("selection updated", "poll_id", pollID, "user_id", key, "draft", draft)
	return reply, nil
}

// Confirm finalizes a voter's draft into an immutable vote record.
func (e *Engine) Confirm(pollID string, voter models.Voter) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, err := e.store.Load()
	if err != nil {
		return "", err
	}
	p, ok := state.Polls[pollID]
	if !ok {
		return MsgPollNotFound, nil
	}

	if closed, err := e.checkClosed(state, p); closed || err != nil {
		if err != nil {
			return "", err
		}
		return MsgPollClosed, nil
	}

	ensureMaps(p)
	key := strconv.FormatInt(voter.ID, 10)

	if p.Confirmed[key] {
		return MsgAlreadyVoted, nil
	}
	draft := dedupeSorted(p.Drafts[key])
	if len(draft) == 0 {
		return MsgEmptySelection, nil
	}

	p.Votes[key] = models.VoteSet(draft)
	p.Confirmed[key] = true
	p.Users[key] = snapshot(voter)

	if err := e.store.Save(state); err != nil {
		return "", err
	}
	slog.Info("vote confirmed", "poll_id", pollID, "user_id", key, "selection", draft)
	return MsgVoteCounted, nil
}

// Results renders the report for the requested poll. Admin only.
func (e *Engine) Results(invokerID int64, text string) (string, error) {
	if !auth.IsAdmin(invokerID, e.cfg.AdminID) {
		return "", e.denied(invokerID, "vote_results")
	}

	cmd, err := ParseQuery(text)
	if errors.Is(err, ErrParse) {
		return UsageResults, nil
	}
	if err != nil {
		return "", err
	}

	state, err := e.store.Load()
	if err != nil {
		return "", err
	}
	if len(state.Polls) == 0 {
		return MsgNoPolls, nil
	}

	p, reply := e.resolve(state, cmd)
	if p == nil {
		return reply, nil
	}
	return Render(p), nil
}

// Close marks the poll closed and renders the final report. Admin only.
func (e *Engine) Close(invokerID int64, text string) (string, error) {
	if !auth.IsAdmin(invokerID, e.cfg.AdminID) {
		return "", e.denied(invokerID, "vote_close")
	}

	cmd, err := ParseQuery(text)
	if errors.Is(err, ErrParse) {
		return UsageClose, nil
	}
	if err != nil {
		return "", err
	}
	if cmd.PollID == "" && !cmd.HasChannel {
		return UsageClose, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	state, err := e.store.Load()
	if err != nil {
		return "", err
	}
	p, reply := e.resolve(state, cmd)
	if p == nil {
		return reply, nil
	}

	p.Closed = true
	if err := e.store.Save(state); err != nil {
		return "", err
	}
	slog.Info("poll closed", "poll_id", p.ID)
	return Render(p), nil
}

// Help returns the admin usage text. Admin only.
func (e *Engine) Help(invokerID int64) (string, error) {
	if !auth.IsAdmin(invokerID, e.cfg.AdminID) {
		return "", e.denied(invokerID, "help")
	}
	return helpText, nil
}

// resolve picks the poll a query refers to, or a not-found reply.
func (e *Engine) resolve(state models.State, cmd QueryCommand) (*models.Poll, string) {
	if cmd.HasChannel {
		p, ok := FindLatest(state, func(q *models.Poll) bool { return q.ChatID == cmd.ChannelID })
		if !ok {
			return nil, MsgNoChannelPolls
		}
		return p, ""
	}
	if cmd.PollID != "" {
		p, ok := state.Polls[cmd.PollID]
		if !ok {
			return nil, "Poll not found: " + cmd.PollID
		}
		return p, ""
	}
	p, ok := FindLatest(state, func(*models.Poll) bool { return true })
	if !ok {
		return nil, MsgNoPolls
	}
	return p, ""
}

// checkClosed applies lazy expiry: the first interaction at or past
// the deadline flips and persists the closed flag.
func (e *Engine) checkClosed(state models.State, p *models.Poll) (bool, error) {
	if p.Closed {
		return true, nil
	}
	if e.now().Unix() >= p.EndAt {
		p.Closed = true
		if err := e.store.Save(state); err != nil {
			return true, err
		}
		slog.Info("poll expired", "poll_id", p.ID)
		return true, nil
	}
	return false, nil
}

// FindLatest returns the matching poll with the greatest creation
// timestamp. Ties break on poll id so the answer is deterministic.
func FindLatest(state models.State, pred func(*models.Poll) bool) (*models.Poll, bool) {
	var latest *models.Poll
	for _, p := range state.Polls {
		if !pred(p) {
			continue
		}
		if latest == nil || p.CreatedAt > latest.CreatedAt ||
			(p.CreatedAt == latest.CreatedAt && p.ID > latest.ID) {
			latest = p
		}
	}
	return latest, latest != nil
}

func ensureMaps(p *models.Poll) {
	if p.Votes == nil {
		p.Votes = make(map[string]models.VoteSet)
	}
	if p.Drafts == nil {
		p.Drafts = make(map[string][]int)
	}
	if p.Confirmed == nil {
		p.Confirmed = make(map[string]bool)
	}
	if p.Users == nil {
		p.Users = make(map[string]models.UserInfo)
	}
}

func snapshot(voter models.Voter) models.UserInfo {
	return models.UserInfo{Username: voter.Username, Name: voter.Name}
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func dedupeSorted(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	out := make([]int, 0, len(s))
	seen := make(map[int]bool, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
