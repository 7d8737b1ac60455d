package session_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/reelfind/internal/history"
	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/internal/search"
	searchmocks "github.com/vmunix/reelfind/internal/search/mocks"
	"github.com/vmunix/reelfind/internal/session"
	"github.com/vmunix/reelfind/internal/session/mocks"
	"github.com/vmunix/reelfind/pkg/omdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder captures everything the session displays.
type recorder struct {
	mu      sync.Mutex
	results []search.Result
	more    []search.Result
	forms   []query.Key
}

func (r *recorder) DisplayResult(res search.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *recorder) DisplayMore(res search.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.more = append(r.more, res)
}

func (r *recorder) FillForm(key query.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms = append(r.forms, key)
}

func page(term string, offset, n, total int) *omdb.SearchResponse {
	items := make([]omdb.Item, 0, n)
	for i := offset; i < offset+n; i++ {
		items = append(items, omdb.Item{
			Title:  fmt.Sprintf("%s %d", term, i),
			Year:   "1999",
			IMDBID: fmt.Sprintf("tt%07d", i),
			Type:   "movie",
			Poster: "N/A",
		})
	}
	return &omdb.SearchResponse{Response: "True", Search: items, TotalResults: fmt.Sprint(total)}
}

type fixture struct {
	sess *session.Session
	api  *searchmocks.MockAPI
	hist *history.History
	rec  *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	api := searchmocks.NewMockAPI(gomock.NewController(t))
	coord := search.NewCoordinator(api, search.Config{PageSize: 10}, testLogger())

	hist, err := history.Open(ctx, "", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = hist.Close() })

	rec := &recorder{}
	return &fixture{
		sess: session.New(coord, hist, rec, testLogger()),
		api:  api,
		hist: hist,
		rec:  rec,
	}
}

func TestSession_SubmitDisplaysResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Search(gomock.Any(), omdb.SearchParams{Term: "matrix", Year: "1999"}).
		Return(page("matrix", 0, 3, 3), nil)

	require.NoError(t, f.sess.Submit(ctx, "matrix", "1999"))
	require.NoError(t, f.sess.Wait())

	assert.Equal(t, "s=matrix&y=1999", f.hist.Location())
	require.Len(t, f.rec.results, 1)
	res := f.rec.results[0]
	assert.Equal(t, query.Key{Term: "matrix", Year: "1999"}, res.Key)
	assert.Len(t, res.Set.Items, 3)
	assert.False(t, res.HasMore)
	assert.Empty(t, f.rec.forms, "submitting does not refill the form")
}

func TestSession_BackAndForwardServeFromCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Search(gomock.Any(), omdb.SearchParams{Term: "alien"}).Return(page("alien", 0, 10, 12), nil)
	f.api.EXPECT().Search(gomock.Any(), omdb.SearchParams{Term: "heat"}).Return(page("heat", 0, 2, 2), nil)

	require.NoError(t, f.sess.Submit(ctx, "alien", ""))
	require.NoError(t, f.sess.Wait())
	require.NoError(t, f.sess.Submit(ctx, "heat", ""))
	require.NoError(t, f.sess.Wait())

	moved, err := f.sess.Back(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	require.NoError(t, f.sess.Wait())

	moved, err = f.sess.Forward(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	require.NoError(t, f.sess.Wait())

	require.Len(t, f.rec.results, 4)
	assert.Equal(t, "alien", f.rec.results[2].Key.Term)
	assert.True(t, f.rec.results[2].Cached)
	assert.True(t, f.rec.results[2].HasMore)
	assert.Equal(t, "heat", f.rec.results[3].Key.Term)
	assert.True(t, f.rec.results[3].Cached)
	assert.Equal(t, []query.Key{{Term: "alien"}, {Term: "heat"}}, f.rec.forms)
}

func TestSession_BackAtStartDoesNothing(t *testing.T) {
	f := newFixture(t)

	moved, err := f.sess.Back(context.Background())
	require.NoError(t, err)
	assert.False(t, moved)
	require.NoError(t, f.sess.Wait())

	assert.Empty(t, f.rec.results)
	assert.Empty(t, f.rec.forms)
}

func TestSession_LoadMoreDisplaysNextPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.api.EXPECT().Search(gomock.Any(), omdb.SearchParams{Term: "rocky"}).Return(page("rocky", 0, 10, 14), nil),
		f.api.EXPECT().Search(gomock.Any(), omdb.SearchParams{Term: "rocky", Page: 2}).Return(page("rocky", 10, 4, 14), nil),
	)

	require.NoError(t, f.sess.Submit(ctx, "rocky", ""))
	require.NoError(t, f.sess.Wait())
	f.sess.LoadMore(ctx)
	require.NoError(t, f.sess.Wait())

	require.Len(t, f.rec.more, 1)
	more := f.rec.more[0]
	assert.Equal(t, 2, more.Page)
	assert.Len(t, more.Set.Items, 4)
	assert.False(t, more.HasMore)

	// Everything is loaded; a further request goes nowhere.
	f.sess.LoadMore(ctx)
	require.NoError(t, f.sess.Wait())
	assert.Len(t, f.rec.more, 1)
}

func TestSession_StaleResultIsDropped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	release := make(chan struct{})
	f.api.EXPECT().Search(gomock.Any(), omdb.SearchParams{Term: "slow"}).
		DoAndReturn(func(context.Context, omdb.SearchParams) (*omdb.SearchResponse, error) {
			<-release
			return page("slow", 0, 1, 1), nil
		})
	f.api.EXPECT().Search(gomock.Any(), omdb.SearchParams{Term: "fast"}).Return(page("fast", 0, 1, 1), nil)

	require.NoError(t, f.sess.Submit(ctx, "slow", ""))
	require.NoError(t, f.sess.Submit(ctx, "fast", ""))
	close(release)
	require.NoError(t, f.sess.Wait())

	require.Len(t, f.rec.results, 1)
	assert.Equal(t, "fast", f.rec.results[0].Key.Term)
}

func TestSession_SubmitWithoutTermFetchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	nav := mocks.NewMockNavigator(ctrl)
	rec := &recorder{}

	fetcher.EXPECT().Guarded(rec).Return(rec)
	nav.EXPECT().Push(gomock.Any(), "s=&y=2001").Return(nil)
	nav.EXPECT().Location().Return("s=&y=2001")

	sess := session.New(fetcher, nav, rec, testLogger())
	require.NoError(t, sess.Submit(context.Background(), "   ", "2001"))
	require.NoError(t, sess.Wait())

	assert.Empty(t, rec.results)
}

func TestSession_PushErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	nav := mocks.NewMockNavigator(ctrl)
	rec := &recorder{}
	boom := errors.New("disk full")

	fetcher.EXPECT().Guarded(rec).Return(rec)
	nav.EXPECT().Push(gomock.Any(), "s=dune&y=").Return(boom)

	sess := session.New(fetcher, nav, rec, testLogger())
	err := sess.Submit(context.Background(), "dune", "")
	assert.ErrorIs(t, err, boom)
}

func TestSession_FetchErrorsAreNotDisplayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	nav := mocks.NewMockNavigator(ctrl)
	rec := &recorder{}
	key := query.Key{Term: "dune"}

	fetcher.EXPECT().Guarded(rec).Return(rec)
	nav.EXPECT().Location().Return("s=dune&y=").AnyTimes()
	fetcher.EXPECT().Fetch(gomock.Any(), key, search.ModeMore).Return(search.Result{}, search.ErrSuppressed)
	fetcher.EXPECT().Fetch(gomock.Any(), key, search.ModeMore).Return(search.Result{}, search.ErrUnknownMode)

	sess := session.New(fetcher, nav, rec, testLogger())
	sess.LoadMore(context.Background())
	require.NoError(t, sess.Wait())
	sess.LoadMore(context.Background())
	require.NoError(t, sess.Wait())

	assert.Empty(t, rec.more)
}

func TestSession_ShowFillsFormFromLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	nav := mocks.NewMockNavigator(ctrl)
	form := mocks.NewMockFormFiller(ctrl)
	rec := &recorder{}
	key := query.Key{Term: "am\u00e9lie", Year: "2001"}
	want := search.Result{Key: key, Mode: search.ModeInitial, Page: 1}

	fetcher.EXPECT().Guarded(gomock.Any()).Return(rec)
	nav.EXPECT().Location().Return("s=am%C3%A9lie&y=2001")
	form.EXPECT().FillForm(key)
	fetcher.EXPECT().Activate(key)
	fetcher.EXPECT().Fetch(gomock.Any(), key, search.ModeInitial).Return(want, nil)

	sess := session.New(fetcher, nav, struct {
		search.Renderer
		session.FormFiller
	}{rec, form}, testLogger())
	sess.Show(context.Background(), true)
	require.NoError(t, sess.Wait())

	require.Len(t, rec.results, 1)
	assert.Equal(t, want, rec.results[0])
}
