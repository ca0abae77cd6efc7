package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/tui/styles"
)

// placeholderImage stands in for entities without an image
const placeholderImage = "👤 (no image)"

// Inspector renders the detail view for one search result
type Inspector struct {
	result   domain.SearchResult
	imageURL string // Resolved URL, empty when the result has no image
	width    int
	height   int
}

// NewInspector creates an empty inspector
func NewInspector() Inspector {
	return Inspector{}
}

// SetResult sets the result being inspected and its resolved image URL
func (i *Inspector) SetResult(result domain.SearchResult, imageURL string) {
	i.result = result
	i.imageURL = imageURL
}

// Result returns the inspected result
func (i Inspector) Result() domain.SearchResult {
	return i.result
}

// ImageURL returns the resolved image URL, or "" for the placeholder
func (i Inspector) ImageURL() string {
	return i.imageURL
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// View renders the inspector
func (i Inspector) View() string {
	contentWidth := max(i.width-4, 20)

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(i.result.Name, contentWidth)))
	b.WriteString("\n\n")

	image := styles.DimStyle.Render(placeholderImage)
	if i.imageURL != "" {
		image = styles.AccentStyle.Render(styles.Truncate(i.imageURL, contentWidth))
	}
	b.WriteString(image)
	b.WriteString("\n\n")

	i.writeField(&b, "Sport", i.result.SportName, contentWidth)
	i.writeField(&b, "Country", i.result.CountryName, contentWidth)
	i.writeField(&b, "ID", i.result.ID, contentWidth)
	if n := len(i.result.ImagePaths); n > 1 {
		i.writeField(&b, "Images", fmt.Sprintf("%d", n), contentWidth)
	}

	return lipgloss.NewStyle().
		Width(i.width).
		Padding(1, 2).
		Render(b.String())
}

func (i Inspector) writeField(b *strings.Builder, label, value string, width int) {
	if value == "" {
		return
	}
	b.WriteString(styles.DimStyle.Render(styles.Pad(label, 9)))
	b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(value, width-9)))
	b.WriteString("\n")
}
