package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wine-cellar/models"
)

func (m catalogModel) View() string {
	switch m.screen {
	case screenDetail:
		if wine, ok := m.current(); ok {
			return m.withFooter(renderDetail(wine))
		}
	case screenConfirmDelete:
		if wine, ok := m.current(); ok {
			return confirmModel{message: wine.Name}.View()
		}
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}
	return m.withFooter(m.renderList())
}

func (m catalogModel) renderList() string {
	var b strings.Builder

	header := fmt.Sprintf("page %d/%d  total %d", m.pageNo, max(m.page.TotalPages, 1), m.page.TotalElements)
	if m.nameFilter != "" {
		header += fmt.Sprintf("  name ~ %q", m.nameFilter)
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.page.Content) == 0:
		b.WriteString("Loading...\n")
	case len(m.page.Content) == 0:
		b.WriteString("No wines\n")
	default:
		for i, wine := range m.page.Content {
			line := fmt.Sprintf("%-32s %4d  %-8s %5.1f", fitText(wine.Name, 32), wine.Year, fitText(wine.Color, 8), wine.Score)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.filtering {
		b.WriteString("\n/ ")
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}

	hotKeys := "enter: open  n/p: page  /: filter  d: delete  c: copy id  r: refresh  v: info  q: quit"
	if m.filtering {
		hotKeys = "enter: apply  esc: cancel"
	}
	return renderPage("WINE CELLAR", b.String(), hotKeys)
}

func renderDetail(wine models.Wine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID:          %s\n", wine.ID)
	fmt.Fprintf(&b, "Name:        %s\n", valueOrDash(wine.Name))
	fmt.Fprintf(&b, "Year:        %d\n", wine.Year)
	fmt.Fprintf(&b, "Color:       %s\n", valueOrDash(wine.Color))
	fmt.Fprintf(&b, "State:       %s\n", valueOrDash(wine.State))
	fmt.Fprintf(&b, "Winery:      %s\n", valueOrDash(wine.Winery))
	fmt.Fprintf(&b, "Kind:        %s\n", valueOrDash(wine.Kind))
	fmt.Fprintf(&b, "Sugar:       %.1f%%\n", wine.Sugar)
	fmt.Fprintf(&b, "Alcohol:     %.1f%%\n", wine.Alcohol)
	fmt.Fprintf(&b, "Origin:      %s, %s\n", valueOrDash(wine.Region), valueOrDash(wine.Country))
	fmt.Fprintf(&b, "Score:       %.1f\n", wine.Score)
	fmt.Fprintf(&b, "Picture:     %s\n", valueOrDash(wine.Picture))
	b.WriteString("\n")
	b.WriteString(valueOrDash(wine.Description))

	return renderPage(strings.ToUpper(wine.Name), b.String(), "esc: back  c: copy id  d: delete")
}

func (m catalogModel) withFooter(page string) string {
	var footer strings.Builder
	if m.status != "" {
		footer.WriteString("\n  ")
		footer.WriteString(m.status)
	}
	if m.errMsg != "" {
		footer.WriteString("\n  ")
		footer.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return page + footer.String()
}
