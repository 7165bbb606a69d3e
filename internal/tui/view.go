package tui

import (
	"fmt"
	"strings"

	"github.com/bochang/recipebox/internal/scale"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case StateDetail:
		return m.viewDetail()
	case StateForm:
		if m.form != nil {
			return docStyle.Render(m.form.View())
		}
		return ""
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.recipeList.View())
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	b.WriteString("\n" + m.help.View(m))
	return docStyle.Render(b.String())
}

func (m Model) viewDetail() string {
	if m.detail == nil {
		return ""
	}
	r := *m.detail

	var b strings.Builder
	star := ""
	if r.IsStarred {
		star = " ⭐"
	}
	b.WriteString(titleStyle.Render(r.Name+star) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s · %d serving(s) · viewed %d time(s)",
		r.Category.DisplayName(), r.Servings, r.ViewCount)) + "\n")
	if r.CookingTime != nil {
		b.WriteString(mutedStyle.Render("time: "+*r.CookingTime) + "\n")
	}
	b.WriteString("\n")

	ings, steps := scale.Portions(r, m.portions)

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Ingredients (x%s)", scale.FormatQuantity(m.portions))) + "\n")
	for _, ing := range ings {
		line := fmt.Sprintf("  %s  %s", ing.Name, ing.Display)
		if ing.Note != "" {
			line += mutedStyle.Render(" (" + ing.Note + ")")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Steps") + "\n")
	for i, step := range steps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	if r.Notes != nil && *r.Notes != "" {
		b.WriteString("\n" + sectionStyle.Render("Notes") + "\n  " + *r.Notes + "\n")
	}

	if len(r.Versions) > 0 {
		b.WriteString("\n" + sectionStyle.Render("History") + "\n")
		for _, v := range r.Versions {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s  %s  %s", v.Version, v.Date, v.Changes)) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(m))
	return docStyle.Render(b.String())
}
