package tui

type errorOverlayModel struct {
	message string
	// expired sessions end the main loop once the overlay is closed
	expired bool
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
