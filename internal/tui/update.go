package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/bochang/recipebox/internal/recipes"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.recipeList.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateList:
			return m.updateList(msg)
		case StateDetail:
			return m.updateDetail(msg)
		case StateForm:
			return m.updateForm(msg)
		}
	}

	if m.state == StateForm && m.form != nil {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.recipeList, cmd = m.recipeList.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter input is active, all keys belong to it.
	if m.recipeList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.recipeList, cmd = m.recipeList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Enter):
		r, ok := m.selectedRecipe()
		if !ok {
			return m, nil
		}
		viewed, err := m.svc.View(r.ID)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.detail = &viewed
		m.portions = 1
		m.state = StateDetail
		m.reloadList()
		return m, nil

	case key.Matches(msg, m.keys.Star):
		r, ok := m.selectedRecipe()
		if !ok {
			return m, nil
		}
		if _, err := m.svc.ToggleStar(r.ID); err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.reloadList()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortMode = nextSortMode(m.sortMode)
		m.reloadList()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.openForm(nil)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		r, ok := m.selectedRecipe()
		if !ok {
			return m, nil
		}
		m.openForm(&r)
		return m, m.form.Init()
	}

	var cmd tea.Cmd
	m.recipeList, cmd = m.recipeList.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.detail = nil
		m.state = StateList
		return m, nil

	case key.Matches(msg, m.keys.More):
		m.portions += 0.5
		return m, nil

	case key.Matches(msg, m.keys.Less):
		if m.portions > 0.5 {
			m.portions -= 0.5
		}
		return m, nil

	case key.Matches(msg, m.keys.Star):
		if m.detail == nil {
			return m, nil
		}
		if _, err := m.svc.ToggleStar(m.detail.ID); err == nil {
			r, _ := m.svc.Get(m.detail.ID)
			m.detail = &r
			m.reloadList()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.detail == nil {
			return m, nil
		}
		r := *m.detail
		m.openForm(&r)
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.state = StateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if err := m.submitForm(); err != nil {
			m.status = errorStyle.Render(err.Error())
			// Reopen the form with the entered values so nothing is lost.
			data := *m.formData
			id := m.editingID
			m.openForm(nil)
			m.editingID = id
			*m.formData = data
			return m, m.form.Init()
		}
		m.form = nil
		m.state = StateList
		m.reloadList()
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		m.state = StateList
		return m, nil
	}

	return m, cmd
}

func nextSortMode(mode recipes.SortMode) recipes.SortMode {
	switch mode {
	case recipes.SortByTime:
		return recipes.SortByName
	case recipes.SortByName:
		return recipes.SortByStarred
	case recipes.SortByStarred:
		return recipes.SortByPopular
	default:
		return recipes.SortByTime
	}
}
