package poll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse marks a malformed command payload. The engine answers it
// with the matching usage hint.
var ErrParse = errors.New("malformed command")

// CreateCommand is a parsed poll-creation request.
type CreateCommand struct {
	Question   string
	Options    []string
	ChannelID  int64
	HasChannel bool
}

// QueryCommand selects a poll for results or close: by id, by channel
// (latest poll posted there), or neither (latest overall).
type QueryCommand struct {
	PollID     string
	ChannelID  int64
	HasChannel bool
}

// CallbackCommand is a parsed button press.
type CallbackCommand struct {
	PollID      string
	OptionIndex int
	Confirm     bool
}

// ParseCreate parses "/vote [channel <id>] Question | Opt 1 | Opt 2".
// The payload needs a question and at least two non-empty options. A
// channel override with a non-numeric id is a parse error.
func ParseCreate(text string) (CreateCommand, error) {
	var cmd CreateCommand

	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return cmd, fmt.Errorf("%w: missing payload", ErrParse)
	}
	payload := strings.TrimSpace(parts[1])

	words := strings.SplitN(payload, " ", 3)
	if len(words) >= 2 && strings.EqualFold(words[0], "channel") {
		id, err := strconv.ParseInt(words[1], 10, 64)
		if err != nil {
			return cmd, fmt.Errorf("%w: invalid channel id %q", ErrParse, words[1])
		}
		cmd.ChannelID = id
		cmd.HasChannel = true
		if len(words) < 3 {
			return cmd, fmt.Errorf("%w: missing payload", ErrParse)
		}
		payload = words[2]
	}

	var items []string
	for _, item := range strings.Split(payload, "|") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) < 3 {
		return cmd, fmt.Errorf("%w: need a question and at least two options", ErrParse)
	}

	cmd.Question = items[0]
	cmd.Options = items[1:]
	return cmd, nil
}

// ParseQuery parses the arguments of /vote_results and /vote_close:
// nothing, a bare poll id, or "channel <id>".
func ParseQuery(text string) (QueryCommand, error) {
	var cmd QueryCommand

	args := strings.Fields(text)
	if len(args) < 2 {
		return cmd, nil
	}
	args = args[1:]

	if strings.EqualFold(args[0], "channel") {
		if len(args) < 2 {
			return cmd, fmt.Errorf("%w: missing channel id", ErrParse)
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return cmd, fmt.Errorf("%w: invalid channel id %q", ErrParse, args[1])
		}
		cmd.ChannelID = id
		cmd.HasChannel = true
		return cmd, nil
	}

	cmd.PollID = args[0]
	return cmd, nil
}

// ParseCallback parses button payloads: "vote:<pollID>:<idx>" for a
// toggle, "vote_confirm:<pollID>" for a confirmation.
func ParseCallback(data string) (CallbackCommand, error) {
	var cmd CallbackCommand

	if rest, ok := strings.CutPrefix(data, "vote_confirm:"); ok {
		if rest == "" {
			return cmd, fmt.Errorf("%w: missing poll id", ErrParse)
		}
		cmd.PollID = rest
		cmd.Confirm = true
		return cmd, nil
	}

	rest, ok := strings.CutPrefix(data, "vote:")
	if !ok {
		return cmd, fmt.Errorf("%w: unknown callback %q", ErrParse, data)
	}
	pollID, idxStr, ok := strings.Cut(rest, ":")
	if !ok || pollID == "" {
		return cmd, fmt.Errorf("%w: missing option index", ErrParse)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return cmd, fmt.Errorf("%w: invalid option index %q", ErrParse, idxStr)
	}
	cmd.PollID = pollID
	cmd.OptionIndex = idx
	return cmd, nil
}
