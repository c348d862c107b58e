package tui

type confirmModel struct {
	entryID int64
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
