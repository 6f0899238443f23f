package tray

import (
	"testing"

	"clock-app/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct{ calls []string }

func (r *recorder) Show()        { r.calls = append(r.calls, "show") }
func (r *recorder) OpenClock()   { r.calls = append(r.calls, "clock") }
func (r *recorder) OpenOptions() { r.calls = append(r.calls, "options") }
func (r *recorder) Quit()        { r.calls = append(r.calls, "quit") }

func TestMenuActions(t *testing.T) {
	r := &recorder{}
	tr := build(r)

	require.Len(t, tr.menu.Items, 6)
	assert.True(t, tr.quit.IsQuit)
	for _, item := range tr.menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}
	assert.Equal(t, []string{"show", "clock", "options", "quit"}, r.calls)
}

func TestMenuLabelsFollowLanguage(t *testing.T) {
	tr := build(&recorder{})
	assert.Equal(t, "Exit", tr.quit.Label)

	require.NoError(t, i18n.Load("ru"))
	defer i18n.Load(i18n.DefaultLanguage)

	tr.setLabels()
	assert.Equal(t, "Выход", tr.quit.Label)
	assert.Equal(t, "Часы", tr.clock.Label)
}
