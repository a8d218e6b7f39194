// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/parlance/dictionary"
	"github.com/patrickmn/go-cache"
)

// Words listed while the search box is empty
const browseListLimit = 50

// Styles holds all the styling for the browser
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Status        lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
	}
}

// Kinds of entries in the results list
const (
	matchExact = iota
	matchSuggestion
	matchListing
)

// resultItem is one word of the results list
type resultItem struct {
	word string
	kind int
}

func (i resultItem) FilterValue() string { return i.word }
func (i resultItem) Title() string       { return i.word }
func (i resultItem) Description() string {
	switch i.kind {
	case matchExact:
		return "✅ in dictionary"
	case matchSuggestion:
		return "💡 did you mean"
	default:
		return ""
	}
}

// browseResults lists what the browser shows for query: the word itself
// when known, its suggestions otherwise, or the first words of the
// dictionary for an empty query.
func browseResults(dict *dictionary.Dictionary, c *cache.Cache, query string) []resultItem {
	query = strings.TrimSpace(query)
	var results []resultItem

	switch {
	case query == "":
		dict.Walk(func(word string, _ []string) bool {
			results = append(results, resultItem{word: word, kind: matchListing})
			return len(results) < browseListLimit
		})
	case dict.Contains(query):
		results = append(results, resultItem{word: query, kind: matchExact})
	default:
		for _, word := range GetOrFillSuggestions(c, dict, query) {
			results = append(results, resultItem{word: word, kind: matchSuggestion})
		}
	}
	return results
}

// translationCard renders the translations of word as markdown.
func translationCard(word string, translations []string) string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s\n\n", word))
	for i, t := range translations {
		content.WriteString(fmt.Sprintf("%d. %s\n", i+1, t))
	}
	return content.String()
}

// browseModel represents the Bubble Tea browser state
type browseModel struct {
	dict  *dictionary.Dictionary
	cache *cache.Cache

	input   textinput.Model
	results list.Model
	detail  viewport.Model

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	lastQuery string
	copied    string
	status    string

	width  int
	height int
	ready  bool
}

func newBrowseModel(dict *dictionary.Dictionary, c *cache.Cache) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Type a word..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	results := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	results.SetShowTitle(false)
	results.SetShowHelp(false)
	results.SetFilteringEnabled(false)

	detail := viewport.New(0, 0)
	detail.SetContent("Select a word to see its translations...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)

	m := browseModel{
		dict:            dict,
		cache:           c,
		input:           ti,
		results:         results,
		detail:          detail,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshResults()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "down":
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			m.updateDetail()
			return m, cmd
		case "enter":
			item, ok := m.results.SelectedItem().(resultItem)
			if !ok {
				return m, nil
			}
			translations := m.dict.Translations(item.word)
			if len(translations) == 0 {
				return m, nil
			}
			if err := clipboard.WriteAll(translations[0]); err != nil {
				m.status = fmt.Sprintf("Failed to copy: %v", err)
				return m, nil
			}
			m.copied = translations[0]
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.lastQuery {
			m.refreshResults()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *browseModel) refreshResults() {
	m.lastQuery = m.input.Value()
	found := browseResults(m.dict, m.cache, m.lastQuery)

	items := make([]list.Item, len(found))
	for i, r := range found {
		items[i] = r
	}
	m.results.SetItems(items)
	m.results.Select(0)
	m.status = ""

	if len(found) == 0 {
		m.detail.SetContent("No matching words.")
		return
	}
	m.updateDetail()
}

// updateDetail shows the translations of the selected word
func (m *browseModel) updateDetail() {
	item, ok := m.results.SelectedItem().(resultItem)
	if !ok {
		return
	}
	card := translationCard(item.word, m.dict.Translations(item.word))

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(card); err == nil {
			m.detail.SetContent(rendered)
			return
		}
	}
	m.detail.SetContent(card)
}

func (m *browseModel) updateLayout() {
	leftWidth := m.width / 3
	rightWidth := m.width - leftWidth - 4
	inputHeight := 3
	footerHeight := 2
	listHeight := m.height - inputHeight - footerHeight - 4

	m.input.Width = leftWidth - 4
	m.results.SetSize(leftWidth-2, listHeight)
	m.detail.Width = rightWidth - 2
	m.detail.Height = inputHeight + listHeight
}

func (m browseModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.BorderFocused.Render(m.input.View()),
		m.styles.BorderBlurred.Render(m.results.View()),
	)
	right := m.styles.BorderBlurred.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Translations"),
		m.detail.View(),
	))

	footer := m.renderHelp()
	if m.status != "" {
		footer = m.styles.Status.Render(m.status) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		footer,
	)
}

// renderHelp renders the key help footer
func (m browseModel) renderHelp() string {
	keys := []string{"↑/↓", "enter", "esc"}
	descs := []string{"select word", "copy first translation", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBrowseApp starts the browser and reports a copied translation once it exits
func runBrowseApp(dict *dictionary.Dictionary, c *cache.Cache) error {
	program := tea.NewProgram(newBrowseModel(dict, c), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(browseModel); ok && m.copied != "" {
		fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, m.copied, Reset)
	}
	return nil
}
