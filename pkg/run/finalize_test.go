package run

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-media/topfive/pkg/models"
)

type stubRenderer struct {
	err   error
	calls int
}

func (r *stubRenderer) Render(ctx context.Context, runSlug string) error {
	r.calls++
	return r.err
}

type stubUploader struct {
	err   error
	calls int
}

func (u *stubUploader) Upload(ctx context.Context, runSlug string) error {
	u.calls++
	return u.err
}

func approvedRun(t *testing.T, store *Store) string {
	t.Helper()
	slug := "widgets-2026-08-01"
	_, err := store.Create(slug, "smart widgets", "home", nil)
	require.NoError(t, err)
	_, err = store.ApproveGate1(slug, "alice", "")
	require.NoError(t, err)
	_, err = store.ApproveGate2(slug, "alice", "")
	require.NoError(t, err)
	return slug
}

func fastFinalizeOptions() FinalizeOptions {
	return FinalizeOptions{MaxRetries: 1, BaseDelay: time.Millisecond}
}

func TestFinalize_RequiresBothGatesApproved(t *testing.T) {
	store := NewStore(t.TempDir())
	slug := newRunForGates(t, store)

	_, err := store.Finalize(context.Background(), slug, &stubRenderer{}, &stubUploader{}, fastFinalizeOptions())
	assert.ErrorIs(t, err, ErrRequiresApproval)
}

func TestFinalize_PublishesOnSuccess(t *testing.T) {
	store := NewStore(t.TempDir())
	slug := approvedRun(t, store)

	renderer := &stubRenderer{}
	uploader := &stubUploader{}
	state, err := store.Finalize(context.Background(), slug, renderer, uploader, fastFinalizeOptions())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, state.Status)
	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, 1, uploader.calls)
}

func TestFinalize_RenderFailureMarksRunFailed(t *testing.T) {
	store := NewStore(t.TempDir())
	slug := approvedRun(t, store)

	renderer := &stubRenderer{err: errors.New("transient: render crashed")}
	uploader := &stubUploader{}
	_, err := store.Finalize(context.Background(), slug, renderer, uploader, fastFinalizeOptions())
	require.Error(t, err)

	reloaded, loadErr := store.Load(slug)
	require.NoError(t, loadErr)
	assert.Equal(t, models.StatusFailed, reloaded.Status)
	assert.Equal(t, 0, uploader.calls)

	last := reloaded.History[len(reloaded.History)-1]
	assert.Contains(t, last.Reason, "rendering failed")
}

func TestFinalize_UploadFailureMarksRunFailed(t *testing.T) {
	store := NewStore(t.TempDir())
	slug := approvedRun(t, store)

	renderer := &stubRenderer{}
	uploader := &stubUploader{err: errors.New("transient: upload timed out")}
	_, err := store.Finalize(context.Background(), slug, renderer, uploader, fastFinalizeOptions())
	require.Error(t, err)

	reloaded, loadErr := store.Load(slug)
	require.NoError(t, loadErr)
	assert.Equal(t, models.StatusFailed, reloaded.Status)
	assert.Equal(t, 1, renderer.calls)
}

func TestFinalize_HistoryPreservedThroughFailure(t *testing.T) {
	store := NewStore(t.TempDir())
	slug := approvedRun(t, store)
	before, err := store.Load(slug)
	require.NoError(t, err)
	historyBefore := len(before.History)

	renderer := &stubRenderer{err: errors.New("permanent: config error")}
	_, err = store.Finalize(context.Background(), slug, renderer, &stubUploader{}, fastFinalizeOptions())
	require.Error(t, err)

	after, err := store.Load(slug)
	require.NoError(t, err)
	assert.Greater(t, len(after.History), historyBefore)
}
