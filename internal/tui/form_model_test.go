package tui_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gasfocus/internal/catalog"
	"github.com/rshade/gasfocus/internal/engine"
	"github.com/rshade/gasfocus/internal/tui"
)

func newForm(opts tui.Options) *tui.FormModel {
	eng := engine.New(catalog.New())
	return tui.NewFormModel(context.Background(), eng, opts)
}

// press feeds one key into the model and returns the updated model.
func press(t *testing.T, m *tui.FormModel, key tea.KeyMsg) *tui.FormModel {
	t.Helper()
	updated, _ := m.Update(key)
	form, ok := updated.(*tui.FormModel)
	require.True(t, ok)
	return form
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText feeds a string rune by rune into the focused field.
func typeText(t *testing.T, m *tui.FormModel, s string) *tui.FormModel {
	t.Helper()
	for _, r := range s {
		m = press(t, m, keyRunes(string(r)))
	}
	return m
}

func TestForm_CalculateHappyPath(t *testing.T) {
	m := newForm(tui.Options{})

	// First record is "3 in 1 (O2,LEL,CO)": bump 0.5, cal 2, flow 0.5.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // focus tests
	m = typeText(t, m, "10")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // focus calibrations
	m = typeText(t, m, "4")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // focus instruments
	m = typeText(t, m, "2")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, m.Err())
	require.NotNil(t, m.Result())
	// ((0.5*10*0.5) + (2*4*0.5)) * 2 = (2.5+4)*2 = 13.00
	assert.Equal(t, "13.00 Liters", m.Result().LitersString())
	assert.Contains(t, m.View(), "13.00 Liters")
}

func TestForm_EmptyFieldsShowMissingFieldError(t *testing.T) {
	m := newForm(tui.Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, m.Result())
	assert.ErrorIs(t, m.Err(), engine.ErrMissingField)
	assert.Contains(t, m.View(), "Please fill in all fields")
}

// A successful calculation replaces a previous error, and vice versa: the
// result/error slot holds exactly one of the two.
func TestForm_ResultSlotOverwritten(t *testing.T) {
	m := newForm(tui.Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Error(t, m.Err())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "0")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "1")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "1")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.NoError(t, m.Err())
	require.NotNil(t, m.Result())

	// Typing garbage into a field flips the slot back to an error.
	m = typeText(t, m, "x")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Error(t, m.Err())
	assert.Nil(t, m.Result())
}

func TestForm_GasSelectionWraps(t *testing.T) {
	m := newForm(tui.Options{})
	view := m.View()
	assert.Contains(t, view, "3-in-1 Gas Mixture")

	// Selector has focus initially; left from the first entry wraps to the
	// last catalog record.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, m.View(), "Chlorine")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "3-in-1 Gas Mixture")
}

func TestForm_DefaultsPreFillForm(t *testing.T) {
	m := newForm(tui.Options{
		DefaultGasType:     "Ammonia (NH3)",
		DefaultInstruments: 7,
	})

	view := m.View()
	assert.Contains(t, view, "Ammonia")
	assert.Contains(t, view, "7")
}

func TestForm_EscQuits(t *testing.T) {
	m := newForm(tui.Options{})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	form, ok := updated.(*tui.FormModel)
	require.True(t, ok)
	assert.Empty(t, form.View())
}
