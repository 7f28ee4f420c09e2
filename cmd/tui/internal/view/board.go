package view

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pcs/internal/export"
	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/vasscm"
)

type boardState int

const (
	boardStateBrowse boardState = iota
	boardStateSearch
	boardStateEdit
)

// BoardModel is the goods board: summary cards, toolbar and the paged goods table.
// records is the last snapshot of the store; visible and counts are derived from it.
type BoardModel struct {
	CommonModel
	goodsService  *goods.Service
	exportService *export.Service
	submitter     vasscm.Submitter
	exportDir     string

	state   boardState
	records []*goods.Record
	visible []*goods.Record
	counts  []goods.PurposeCount

	filterIdx int
	filter    goods.Filter

	search textinput.Model
	table  table.Model
	pager  paginator.Model

	form        *huh.Form
	formPurpose *goods.Purpose
	editingID   string

	loading bool
	err     error
	status  string
}

func NewBoardModel(goodsSvc *goods.Service, exportSvc *export.Service, submitter vasscm.Submitter, exportDir string) BoardModel {
	columns := []table.Column{
		{Title: "STT", Width: 4},
		{Title: "Mã manifest", Width: 12},
		{Title: "House B/L", Width: 10},
		{Title: "Số container", Width: 13},
		{Title: "Niêm chì", Width: 8},
		{Title: "Mô tả hàng hóa", Width: 20},
		{Title: "SL", Width: 15},
		{Title: "Khối lượng (kg)", Width: 15},
		{Title: "Cảng dỡ", Width: 8},
		{Title: "Trạng thái", Width: 10},
		{Title: "Điểm đến", Width: 18},
		{Title: "Mục đích vận chuyển", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(goods.PageSize+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Tìm kiếm container, house B/L, mô tả hàng hóa"
	ti.Prompt = "Tìm kiếm: "
	ti.Width = 48

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = goods.PageSize

	return BoardModel{
		goodsService:  goodsSvc,
		exportService: exportSvc,
		submitter:     submitter,
		exportDir:     exportDir,
		search:        ti,
		table:         t,
		pager:         p,
		filter:        goods.Filter{Purpose: goods.FilterAll},
		loading:       true,
	}
}

func (m BoardModel) Title() string { return "Danh sách hàng hoá dự kiến dỡ" }

func (m BoardModel) ShortHelp() string {
	switch m.state {
	case boardStateSearch:
		return "Enter/Esc: done"
	case boardStateEdit:
		return "↑/↓: choose | Enter: save | Esc: cancel"
	}

	return "/: search | f: purpose filter | e: edit purpose | ←/→: page | d: CSV | v: VASSCM | r: refresh | q: quit"
}

func (m BoardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.records = msg.records
		m.counts = goods.PurposeCounts(m.records)
		m.refreshTable()

		return m, nil

	case purposeSavedMsg:
		m.state = boardStateBrowse
		m.form = nil
		m.table.Focus()

		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("Lỗi khi lưu: %v", msg.err)
		case !msg.updated:
			m.status = fmt.Sprintf("Không tìm thấy hàng hoá %s", msg.id)
		default:
			m.status = fmt.Sprintf("Đã cập nhật %s: %s", msg.id, msg.purpose.Label())
		}

		return m, m.loadCmd()

	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Lỗi xuất CSV: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Đã xuất %d dòng: %s", msg.count, msg.path)

		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Lỗi gửi VASSCM: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Đã ghi nhận gửi VASSCM %d dòng (mã %s)", msg.receipt.Count, msg.receipt.ID)

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	switch m.state {
	case boardStateBrowse:
		return m.updateBrowse(msg)
	case boardStateSearch:
		return m.updateSearch(msg)
	case boardStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m BoardModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.state = boardStateSearch
			m.table.Blur()
			cmd := m.search.Focus()

			return m, cmd
		case "f":
			options := goods.FilterOptions()
			m.filterIdx = (m.filterIdx + 1) % len(options)
			m.filter.Purpose = options[m.filterIdx]
			m.pager.Page = 0
			m.refreshTable()

			return m, nil
		case "left", "h":
			m.pager.PrevPage()
			m.table.SetCursor(0)
			m.refreshTable()

			return m, nil
		case "right", "l":
			m.pager.NextPage()
			m.table.SetCursor(0)
			m.refreshTable()

			return m, nil
		case "e", "enter":
			return m.enterEditMode()
		case "d":
			return m, m.exportCmd()
		case "v":
			return m, m.submitCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BoardModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.state = boardStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != m.filter.Query {
		m.filter.Query = m.search.Value()
		m.pager.Page = 0
		m.refreshTable()
	}

	return m, cmd
}

// selected returns the record under the table cursor on the current page.
func (m BoardModel) selected() *goods.Record {
	idx := m.pager.Page*m.pager.PerPage + m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}

	return m.visible[idx]
}

func (m BoardModel) enterEditMode() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil {
		return m, nil
	}

	m.editingID = rec.ID
	m.formPurpose = new(rec.Purpose)

	options := make([]huh.Option[goods.Purpose], 0, len(goods.PurposeOptions))
	for _, o := range goods.PurposeOptions {
		options = append(options, huh.NewOption(o.Label, o.Purpose))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[goods.Purpose]().
				Key("purpose").
				Title("Mục đích vận chuyển").
				Options(options...).
				Value(m.formPurpose),
		),
	).WithWidth(30).WithShowHelp(false)

	m.state = boardStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m BoardModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = boardStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = boardStateBrowse
	m.form = nil
	m.table.Focus()

	return m, m.setPurposeCmd(m.editingID, *m.formPurpose)
}

// refreshTable recomputes the visible set from the snapshot and fills the current page.
func (m *BoardModel) refreshTable() {
	m.visible = goods.VisibleRecords(m.records, m.filter)

	// SetTotalPages ignores an empty set; an empty board still has one (empty) page.
	m.pager.TotalPages = 1
	m.pager.SetTotalPages(len(m.visible))

	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}

	start, end := m.pager.GetSliceBounds(len(m.visible))

	rows := make([]table.Row, 0, end-start)
	for i, r := range m.visible[start:end] {
		rows = append(rows, table.Row{
			strconv.Itoa(start + i + 1),
			r.ManifestNo,
			r.HouseBill,
			r.ContainerNo,
			r.SealNo,
			r.Commodity,
			FormatNumber(r.Quantity) + " " + r.Unit,
			FormatNumber(r.Weight),
			r.DischargePort,
			string(r.Status),
			r.Destination,
			r.Purpose.Label(),
		})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m BoardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Đang tải dữ liệu...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	toolbar := fmt.Sprintf("%s   [f] Mục đích: %s",
		m.search.View(),
		activeStyle(m.filter.Purpose.Label()),
	)

	tableView := m.table.View()
	if len(m.visible) == 0 {
		tableView += "\n" + lipgloss.NewStyle().Faint(true).Padding(1, 2).Render("Không có dữ liệu")
	}

	tableView = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(tableView)

	footer := fmt.Sprintf("Trang %s  •  %d hàng hoá", m.pager.View(), len(m.visible))
	if rec := m.selected(); rec != nil {
		footer += "  •  " + rec.ContainerNo + " " + statusBadge(rec.Status)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		headerView(),
		voyageView(goods.DefaultVoyage),
		cardsView(m.counts),
		lipgloss.NewStyle().PaddingTop(1).Render(toolbar),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(footer),
	)

	if m.state == boardStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(36).
			Render(fmt.Sprintf("Hàng hoá %s\n\n%s", m.editingID, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	style := lipgloss.NewStyle().Padding(1)
	if m.Width > 0 {
		style = style.MaxWidth(m.Width)
	}

	if m.Height > 0 {
		style = style.MaxHeight(m.Height)
	}

	return style.Render(content)
}

var _ View = BoardModel{}

// Messages

type boardLoadedMsg struct {
	records []*goods.Record
	err     error
}

func (m BoardModel) loadCmd() tea.Cmd {
	svc := m.goodsService

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		records, err := svc.List(ctx)

		return boardLoadedMsg{records: records, err: err}
	}
}

type purposeSavedMsg struct {
	id      string
	purpose goods.Purpose
	updated bool
	err     error
}

func (m BoardModel) setPurposeCmd(id string, purpose goods.Purpose) tea.Cmd {
	svc := m.goodsService

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		updated, err := svc.SetPurpose(ctx, id, purpose)
		if err == nil && updated {
			slog.Info("transport purpose changed", "id", id, "purpose", purpose)
		}

		return purposeSavedMsg{id: id, purpose: purpose, updated: updated, err: err}
	}
}

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

func (m BoardModel) exportCmd() tea.Cmd {
	svc := m.exportService
	filter := m.filter
	dir := m.exportDir

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		path, n, err := svc.Export(ctx, filter, dir)

		return exportDoneMsg{path: path, count: n, err: err}
	}
}

type submitDoneMsg struct {
	receipt vasscm.Receipt
	err     error
}

func (m BoardModel) submitCmd() tea.Cmd {
	svc := m.goodsService
	submitter := m.submitter

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		records, err := svc.List(ctx)
		if err != nil {
			return submitDoneMsg{err: err}
		}

		receipt, err := submitter.Submit(ctx, records)

		return submitDoneMsg{receipt: receipt, err: err}
	}
}
