package view

import (
	"html"
	"strings"
)

const separator = "──────────"

// Text рендерит строки для терминала.
func Text(lines []Line) string {
	var b strings.Builder

	for _, line := range lines {
		if line.Separator {
			b.WriteString(separator)
		} else {
			b.WriteString(line.Text)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// HTML рендерит строки в подмножестве HTML, которое понимает Telegram.
func HTML(lines []Line) string {
	var b strings.Builder

	for _, line := range lines {
		switch {
		case line.Separator:
			b.WriteString(separator)
		case line.Emphasized:
			b.WriteString("<b>" + html.EscapeString(line.Text) + "</b>")
		case line.Color == colorWarning || line.Color == colorNotice:
			b.WriteString("<i>" + html.EscapeString(line.Text) + "</i>")
		default:
			b.WriteString(html.EscapeString(line.Text))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
