package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/mock"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow     = time.Date(2026, 7, 3, 13, 30, 0, 0, time.UTC)
	testSession = models.Session{UserID: 9, Login: "alice", Token: "tok"}
)

type loopMocks struct {
	infer   *mock.MockClientInferenceService
	food    *mock.MockClientFoodService
	summary *mock.MockClientSummaryService
	copied  *string
}

func newTestLoop(t *testing.T) (mainLoopModel, loopMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	copied := ""
	mk := loopMocks{
		infer:   mock.NewMockClientInferenceService(ctrl),
		food:    mock.NewMockClientFoodService(ctrl),
		summary: mock.NewMockClientSummaryService(ctrl),
		copied:  &copied,
	}

	services := &service.ClientServices{
		InferenceService: mk.infer,
		FoodService:      mk.food,
		SummaryService:   mk.summary,
	}

	m := newMainLoopModel(context.Background(), services, testSession)
	m.now = func() time.Time { return testNow }
	m.day = models.StartOfDay(testNow)
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	return m, mk
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

// runCmd executes cmd and flattens batches. Only use it on commands that do
// not sleep.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyPress(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+p":    tea.KeyCtrlP,
		"ctrl+s":    tea.KeyCtrlS,
	}
	if kt, ok := special[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
