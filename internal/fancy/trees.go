package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, info string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(info),
		),
	)
}

// StepNode renders a single trace step: green for success, red for failure.
func StepNode(tool string, detail string, failed bool) string {
	style := OKStyle
	if failed {
		style = ErrStyle
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		style.Render(tool),
		" ",
		InfoStyle.Render(TruncateString(detail, 80)),
	)
}
