package controllers

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
	"github.com/dmitrijs2005/cmskeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeUI records prompts and answers confirms with a canned response.
type fakeUI struct {
	confirmAnswer bool
	confirms      []string
	alerts        []string
}

func (f *fakeUI) Confirm(prompt string) bool {
	f.confirms = append(f.confirms, prompt)
	return f.confirmAnswer
}

func (f *fakeUI) Alert(msg string) {
	f.alerts = append(f.alerts, msg)
}

func articleID(a models.Article) int64 { return a.ID }

func testLogger() logging.Logger { return logging.NewJSONLogger(io.Discard) }

func twoArticles() []models.Article {
	return []models.Article{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second"},
	}
}

func TestLoad_ReplacesCollection(t *testing.T) {
	ui := &fakeUI{}
	c := NewListController("article",
		func(ctx context.Context) ([]models.Article, error) { return twoArticles(), nil },
		func(ctx context.Context, id int64) error { return nil },
		articleID, ui, testLogger())

	c.Load(context.Background())
	require.False(t, c.Loading())
	require.Len(t, c.Items(), 2)
}

func TestLoad_FailureLeavesEmptyCollection(t *testing.T) {
	ui := &fakeUI{}
	c := NewListController("article",
		func(ctx context.Context) ([]models.Article, error) { return nil, errors.New("boom") },
		func(ctx context.Context, id int64) error { return nil },
		articleID, ui, testLogger())

	c.Load(context.Background())
	require.False(t, c.Loading(), "load failure is not fatal")
	require.Empty(t, c.Items())
	require.Empty(t, ui.alerts, "load failure is logged, not alerted")
}

func TestDelete_RemovesOnlyAfterServerConfirms(t *testing.T) {
	ui := &fakeUI{confirmAnswer: true}
	var deleted []int64
	c := NewListController("article",
		func(ctx context.Context) ([]models.Article, error) { return twoArticles(), nil },
		func(ctx context.Context, id int64) error { deleted = append(deleted, id); return nil },
		articleID, ui, testLogger())

	c.Load(context.Background())
	c.Delete(context.Background(), 1)

	require.Equal(t, []int64{1}, deleted)
	require.Len(t, c.Items(), 1)
	require.Equal(t, int64(2), c.Items()[0].ID)
}

func TestDelete_FailureLeavesCollectionUntouched(t *testing.T) {
	ui := &fakeUI{confirmAnswer: true}
	c := NewListController("article",
		func(ctx context.Context) ([]models.Article, error) { return twoArticles(), nil },
		func(ctx context.Context, id int64) error { return errors.New("boom") },
		articleID, ui, testLogger())

	c.Load(context.Background())
	c.Delete(context.Background(), 1)

	require.Len(t, c.Items(), 2, "failed delete must not remove the item")
	require.Equal(t, []string{"Failed to delete article"}, ui.alerts)
}

func TestDelete_DeclinedConfirmationDoesNothing(t *testing.T) {
	ui := &fakeUI{confirmAnswer: false}
	called := false
	c := NewListController("article",
		func(ctx context.Context) ([]models.Article, error) { return twoArticles(), nil },
		func(ctx context.Context, id int64) error { called = true; return nil },
		articleID, ui, testLogger())

	c.Load(context.Background())
	c.Delete(context.Background(), 1)

	require.False(t, called, "declined confirmation must not call the server")
	require.Len(t, c.Items(), 2)
}

func TestLoad_ResponseAfterResetIsDiscarded(t *testing.T) {
	ui := &fakeUI{}
	var c *ListController[models.Article]
	c = NewListController("article",
		func(ctx context.Context) ([]models.Article, error) {
			// The screen unmounts while the request is in flight.
			c.Reset()
			return twoArticles(), nil
		},
		func(ctx context.Context, id int64) error { return nil },
		articleID, ui, testLogger())

	c.Load(context.Background())
	require.Empty(t, c.Items(), "late response must not mutate discarded state")
}

func TestDelete_ResponseAfterResetIsDiscarded(t *testing.T) {
	ui := &fakeUI{confirmAnswer: true}
	var c *ListController[models.Article]
	c = NewListController("article",
		func(ctx context.Context) ([]models.Article, error) { return twoArticles(), nil },
		func(ctx context.Context, id int64) error {
			c.Reset()
			return errors.New("boom")
		},
		articleID, ui, testLogger())

	c.Load(context.Background())
	c.Delete(context.Background(), 1)

	require.Empty(t, ui.alerts, "late failure must not alert a torn-down screen")
}

func TestPrepend_InsertsAtHead(t *testing.T) {
	ui := &fakeUI{}
	c := NewListController("article",
		func(ctx context.Context) ([]models.Article, error) { return twoArticles(), nil },
		func(ctx context.Context, id int64) error { return nil },
		articleID, ui, testLogger())

	c.Load(context.Background())
	c.Prepend(models.Article{ID: 3, Title: "Newest"})

	require.Equal(t, int64(3), c.Items()[0].ID)
	require.Len(t, c.Items(), 3)
}
