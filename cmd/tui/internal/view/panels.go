package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
)

// tagColors maps the palette names used by goods.PurposeOptions to terminal colors.
var tagColors = map[string]lipgloss.Color{
	"blue":     lipgloss.Color("33"),
	"geekblue": lipgloss.Color("63"),
	"purple":   lipgloss.Color("129"),
	"orange":   lipgloss.Color("208"),
}

var statusColors = map[string]lipgloss.Color{
	"success":    lipgloss.Color("46"),
	"processing": lipgloss.Color("39"),
	"default":    lipgloss.Color("245"),
}

func tag(text, color string) string {
	c, ok := tagColors[color]
	if !ok {
		c = lipgloss.Color("240")
	}

	return lipgloss.NewStyle().
		Foreground(c).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(c).
		Padding(0, 1).
		Render(text)
}

func statusBadge(s goods.Status) string {
	return lipgloss.NewStyle().Foreground(statusColors[goods.StatusColors[s]]).Render("● ") + string(s)
}

func headerView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).
		Render("PCS - Danh sách hàng hoá dự kiến dỡ")
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("153")).
		Render("Đồng bộ từ VASSCM, cập nhật mục đích vận chuyển và phản hồi về hệ thống hải quan.")
	actions := fmt.Sprintf("%s  %s",
		activeStyle("[d] Tải xuống CSV"),
		activeStyle("[v] Gửi VASSCM"),
	)

	return lipgloss.NewStyle().
		Background(lipgloss.Color("17")).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, desc, actions))
}

func voyageView(fields []goods.VoyageField) string {
	label := lipgloss.NewStyle().Faint(true)

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s: %s", label.Render(f.Label), f.Value))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render("Thông tin chuyến tàu\n\n" + strings.Join(lines, "\n"))
}

func cardsView(counts []goods.PurposeCount) string {
	cards := make([]string, 0, len(counts))

	for _, c := range counts {
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Faint(true).Render(c.Label),
			lipgloss.NewStyle().Bold(true).Render(FormatCount(c.Count)),
			tag("Mục đích", c.Color),
		)

		cards = append(cards, lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(22).
			Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}
