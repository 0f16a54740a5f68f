package demo

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/scrollkit/scrollkit/vlist"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)
	normalStyle = lipgloss.NewStyle()
)

// generateItems builds n list items with varied heights plus the plain-text
// bodies used as the fuzzy search corpus.
func generateItems(n int) ([]vlist.Item, []string) {
	items := make([]vlist.Item, 0, n)
	contents := make([]string, 0, n)

	for i := range n {
		id := uuid.NewString()
		body := fmt.Sprintf("Record %d  %s", i, id[:8])
		switch {
		case i%13 == 0:
			body += "\n  status: pending\n  retries: " + fmt.Sprint(i%4)
		case i%7 == 0:
			body += "\n  " + strings.Repeat("·", 1+i%40)
		}
		items = append(items, vlist.NewTextItem(id, body).
			WithStyles(&selectedStyle, &normalStyle))
		contents = append(contents, body)
	}
	return items, contents
}
