package controller

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

func TestRecordItem_FilterValue(t *testing.T) {
	item := recordItem{rec: m.ConversionRecord{Original: "Dim x"}}
	assert.Equal(t, "Dim x", item.FilterValue())
}

func TestRecordsModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			rm := recordsModel{list: list.New(nil, recordDelegate{}, 10, 10)}

			var msg tea.Msg
			switch key {
			case "q":
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			_, cmd := rm.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestTUI_DisplayRecords_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	tui := NewTUI(out)

	require.NoError(t, tui.DisplayRecords(nil))
	assert.Contains(t, out.String(), "No conversions recorded")
}

func TestTUI_DisplaySummary(t *testing.T) {
	out := &bytes.Buffer{}
	tui := NewTUI(out)

	require.NoError(t, tui.DisplaySummary(Summary{Input: "a.vbs", Output: "a.js", Lines: 3}))
	assert.Contains(t, out.String(), "a.vbs")
	assert.Contains(t, out.String(), "a.js")
}
