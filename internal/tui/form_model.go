// Package tui implements the interactive single-page estimation form: a
// cylinder picker, three count fields, and a live result line, all driving
// the same engine the non-interactive commands use.
package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/gasfocus/internal/catalog"
	"github.com/rshade/gasfocus/internal/engine"
)

// Field indices for the three count inputs.
const (
	fieldTests = iota
	fieldCalibrations
	fieldInstruments
	fieldCount
)

// focusGas is the focus position of the gas-type selector; the count fields
// follow at focusGas+1..focusGas+fieldCount.
const focusGas = 0

// inputWidth is the rendered width of each count field.
const inputWidth = 12

// Options pre-fill the form from configuration defaults.
type Options struct {
	// DefaultGasType pre-selects a cylinder by raw label when it exists in
	// the catalog.
	DefaultGasType string

	// DefaultInstruments pre-fills the instrument count when positive.
	DefaultInstruments int
}

// FormModel is the Bubble Tea model for the estimation form. It owns
// transient UI state only; each calculation overwrites the previous
// result or error.
type FormModel struct {
	eng     *engine.Engine
	records []catalog.CylinderRecord

	selected int
	inputs   [fieldCount]textinput.Model
	focus    int

	result *engine.Result
	err    error

	ctx      context.Context
	quitting bool
}

// NewFormModel builds the form over the given engine.
func NewFormModel(ctx context.Context, eng *engine.Engine, opts Options) *FormModel {
	m := &FormModel{
		eng:     eng,
		records: eng.Catalog().Records(),
		ctx:     ctx,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.Prompt = ""
		ti.CharLimit = 9
		ti.Width = inputWidth
		m.inputs[i] = ti
	}

	if opts.DefaultGasType != "" {
		for i, rec := range m.records {
			if rec.GasType == opts.DefaultGasType {
				m.selected = i
				break
			}
		}
	}
	if opts.DefaultInstruments > 0 {
		m.inputs[fieldInstruments].SetValue(strconv.Itoa(opts.DefaultInstruments))
	}

	return m
}

// Init implements tea.Model.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocusedInput(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		if m.focus == focusGas && keyMsg.String() == "down" {
			m.selectNext()
			return m, nil
		}
		m.setFocus(m.focus + 1)
		return m, nil

	case "shift+tab", "up":
		if m.focus == focusGas && keyMsg.String() == "up" {
			m.selectPrev()
			return m, nil
		}
		m.setFocus(m.focus - 1)
		return m, nil

	case "left":
		if m.focus == focusGas {
			m.selectPrev()
			return m, nil
		}

	case "right":
		if m.focus == focusGas {
			m.selectNext()
			return m, nil
		}

	case "enter":
		m.calculate()
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

// Result returns the last successful calculation, if any.
func (m *FormModel) Result() *engine.Result {
	return m.result
}

// Err returns the last validation error, if any.
func (m *FormModel) Err() error {
	return m.err
}

func (m *FormModel) selectNext() {
	m.selected = (m.selected + 1) % len(m.records)
}

func (m *FormModel) selectPrev() {
	m.selected = (m.selected - 1 + len(m.records)) % len(m.records)
}

// setFocus moves focus, wrapping across the selector and the three fields.
func (m *FormModel) setFocus(focus int) {
	total := fieldCount + 1
	m.focus = (focus + total) % total

	for i := range m.inputs {
		if m.focus == i+1 {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *FormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.focus == focusGas {
		return nil
	}
	var cmd tea.Cmd
	i := m.focus - 1
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return cmd
}

// calculate runs the engine over the current form state. The result and
// error slots are mutually exclusive and replaced on every invocation.
func (m *FormModel) calculate() {
	req := engine.Request{
		GasType:              m.records[m.selected].GasType,
		TestsPerMonth:        m.inputs[fieldTests].Value(),
		CalibrationsPerMonth: m.inputs[fieldCalibrations].Value(),
		Instruments:          m.inputs[fieldInstruments].Value(),
	}

	result, err := m.eng.Calculate(m.ctx, req)
	if err != nil {
		m.result = nil
		m.err = err
		return
	}
	m.result = result
	m.err = nil
}

// Run starts the form program and blocks until the user quits.
func Run(ctx context.Context, eng *engine.Engine, opts Options) error {
	model := NewFormModel(ctx, eng, opts)
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("running estimation form: %w", err)
	}
	return nil
}
