// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package tui

import (
	"strings"

	"github.com/MarlyasDad/cheat-chat/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: ")
	b.WriteString(info.App)
	b.WriteString("\n")
	b.WriteString("Версия: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.Commit)

	return overlayBoxStyle.Render(titleStyle.Render("О программе") + "\n\n" + b.String() + "\n\nf1 / esc закрыть")
}
