package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DashboardModel struct {
	Client   *Client
	User     *User
	Table    table.Model
	Tasks    []Task
	Projects map[uint]string
	Status   string
	Err      error
}

type dataLoadedMsg struct {
	Projects []Project
	Tasks    []Task
	Err      error
}

type statusChangedMsg struct {
	Task *Task
	Err  error
}

func NewDashboardModel(client *Client, user *User, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 30},
		{Title: "Status", Width: 12},
		{Title: "Project", Width: 24},
		{Title: "Order", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{
		Client:   client,
		User:     user,
		Table:    t,
		Projects: map[uint]string{},
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		projects, err := client.Projects()
		if err != nil {
			return dataLoadedMsg{Err: err}
		}
		tasks, err := client.Tasks()
		if err != nil {
			return dataLoadedMsg{Err: err}
		}
		return dataLoadedMsg{Projects: projects, Tasks: tasks}
	}
}

func (m DashboardModel) setStatusCmd(id uint, status string) tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		t, err := client.SetTaskStatus(id, status)
		return statusChangedMsg{Task: t, Err: err}
	}
}

func (m DashboardModel) selectedTaskID() (uint, bool) {
	row := m.Table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	var id uint
	if _, err := fmt.Sscanf(row[0], "%d", &id); err != nil {
		return 0, false
	}
	return id, true
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd()
		case "1", "2", "3":
			if id, ok := m.selectedTaskID(); ok {
				status := map[string]string{"1": "pending", "2": "in_progress", "3": "completed"}[msg.String()]
				return m, m.setStatusCmd(id, status)
			}
		case "q":
			return m, tea.Quit
		}

	case dataLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Projects = make(map[uint]string, len(msg.Projects))
		for _, p := range msg.Projects {
			m.Projects[p.ID] = p.Name
		}
		m.Tasks = msg.Tasks
		rows := make([]table.Row, 0, len(msg.Tasks))
		for _, t := range msg.Tasks {
			order := "-"
			if t.OrderIndex != nil {
				order = fmt.Sprintf("%d", *t.OrderIndex)
			}
			project := m.Projects[t.ProjectID]
			if project == "" {
				project = fmt.Sprintf("#%d", t.ProjectID)
			}
			rows = append(rows, table.Row{fmt.Sprintf("%d", t.ID), t.Title, t.Status, project, order})
		}
		m.Table.SetRows(rows)
		m.Status = fmt.Sprintf("%d tasks across %d projects", len(msg.Tasks), len(msg.Projects))

	case statusChangedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Status = fmt.Sprintf("task #%d -> %s", msg.Task.ID, msg.Task.Status)
		return m, m.refreshCmd()
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	header := fmt.Sprintf("Taskboard - %s (%s)", m.User.Name, m.User.Role)
	b.WriteString(titleStyle.Render(header) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh | 1/2/3 set status | q quit | up/down navigate"))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
