package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longContent(lines int) string {
	var b strings.Builder
	for i := 1; i <= lines; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func sizedPager(t *testing.T, content string, height int) pagerModel {
	t.Helper()
	model, cmd := newPagerModel("Paris, 3 jours", content).Update(tea.WindowSizeMsg{Width: 80, Height: height})
	assert.Nil(t, cmd)
	m, ok := model.(pagerModel)
	require.True(t, ok)
	return m
}

func TestPager_EmptyUntilSized(t *testing.T) {
	assert.Empty(t, newPagerModel("t", "body").View())
}

func TestPager_ShowsTitleAndTop(t *testing.T) {
	m := sizedPager(t, longContent(50), 12)

	view := m.View()
	assert.Contains(t, view, "Paris, 3 jours")
	assert.Contains(t, view, "line 1")
	assert.NotContains(t, view, "line 20")
	assert.Contains(t, view, "[TOP]")
	assert.Equal(t, 10, m.vp.Height)
}

func TestPager_Scrolls(t *testing.T) {
	m := sizedPager(t, longContent(50), 12)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(pagerModel)
	assert.Equal(t, 1, m.vp.YOffset)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = model.(pagerModel)
	assert.True(t, m.vp.AtBottom())
	assert.Contains(t, m.View(), "[END]")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = model.(pagerModel)
	assert.True(t, m.vp.AtTop())
}

func TestPager_Quit(t *testing.T) {
	m := sizedPager(t, longContent(5), 12)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), msg.String())
	}
}

func TestPlanShow_PagerIgnoredWhenNotInteractive(t *testing.T) {
	a := testApp(t)
	p := generateJSON(t, a, "--user", "u1", "--seed", "5")

	out, err := executeCmd(t, a, "plan", "show", p.ID, "--pager")
	require.NoError(t, err)
	assert.Contains(t, out, p.Title)
}
