package poll

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/2008cattiger-cyber/miniature/models"
)

// BuildPrompt renders the outbound poll message: question, voting
// instructions for multi mode, the deadline, and one button row per
// option plus a confirm row in multi mode.
func BuildPrompt(p *models.Poll) (string, [][]models.Button) {
	end := time.Unix(p.EndAt, 0).UTC()

	lines := []string{p.Question, ""}
	if p.Mode != models.ModeSingle {
		lines = append(lines, "Pick every option that applies, then press Confirm.", "")
	}
	lines = append(lines, fmt.Sprintf("Ends: %s (%s)", end.Format("2006-01-02"), humanize.Time(end)))

	var markup [][]models.Button
	for i, option := range p.Options {
		markup = append(markup, []models.Button{{
			Label: option,
			Data:  fmt.Sprintf("vote:%s:%d", p.ID, i),
		}})
	}
	if p.Mode != models.ModeSingle {
		markup = append(markup, []models.Button{{
			Label: "Confirm",
			Data:  "vote_confirm:" + p.ID,
		}})
	}

	return strings.Join(lines, "\n"), markup
}
