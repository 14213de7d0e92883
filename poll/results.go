package poll

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/2008cattiger-cyber/miniature/models"
)

// Render builds the deterministic results report: header, then every
// option in declared order with its voter count and enumerated voters.
// Options nobody picked get a "(no votes)" placeholder line.
func Render(p *models.Poll) string {
	lines := []string{
		"Poll ID: " + p.ID,
		"Question: " + p.Question,
		"Ends at: " + formatEndTime(p.EndAt),
		"",
	}

	voterKeys := sortedVoterKeys(p.Votes)
	for idx, option := range p.Options {
		var voters []string
		for _, key := range voterKeys {
			if containsOption(p.Votes[key], idx) {
				voters = append(voters, formatUser(p.Users[key], key))
			}
		}
		lines = append(lines, fmt.Sprintf("%d. %s - %d vote(s)", idx+1, option, len(voters)))
		for _, voter := range voters {
			lines = append(lines, "- "+voter)
		}
		if len(voters) == 0 {
			lines = append(lines, "- (no votes)")
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func formatEndTime(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04") + " UTC"
}

// formatUser renders a voter as "@username (id)", "name (id)", or the
// bare id, depending on which snapshot fields were captured.
func formatUser(info models.UserInfo, userID string) string {
	if info.Username != "" {
		return "@" + info.Username + " (" + userID + ")"
	}
	if info.Name != "" {
		return info.Name + " (" + userID + ")"
	}
	return userID
}

// sortedVoterKeys orders user ids numerically where possible, so the
// report is byte-stable across renders.
func sortedVoterKeys(votes map[string]models.VoteSet) []string {
	keys := make([]string, 0, len(votes))
	for key := range votes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.ParseInt(keys[i], 10, 64)
		b, errB := strconv.ParseInt(keys[j], 10, 64)
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}

func containsOption(votes models.VoteSet, idx int) bool {
	for _, v := range votes {
		if v == idx {
			return true
		}
	}
	return false
}
