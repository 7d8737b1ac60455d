package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/internal/search"
)

type resultMsg search.Result

type moreMsg search.Result

type formMsg query.Key

type errMsg struct{ err error }

// renderer forwards session output into the program's message loop.
type renderer struct {
	send func(tea.Msg)
}

func (r *renderer) DisplayResult(res search.Result) { r.send(resultMsg(res)) }

func (r *renderer) DisplayMore(res search.Result) { r.send(moreMsg(res)) }

// FillForm is called from Update during navigation, where a blocking Send
// would deadlock the event loop.
func (r *renderer) FillForm(key query.Key) { go r.send(formMsg(key)) }
