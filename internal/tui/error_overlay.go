package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Ошибка") + "\n\n" + m.message + "\n\nenter / esc выйти"
	return overlayBoxStyle.Render(content)
}
