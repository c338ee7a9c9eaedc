package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cmskeeper/internal/client/controllers"
	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// Articles runs the article management screen. The collection controller is
// mounted on entry and discarded on exit, so a stale response from a previous
// visit can never leak into the next one.
func (a *App) Articles(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	list := controllers.NewListController("article",
		a.api.Articles.List, a.api.Articles.Delete,
		func(x models.Article) int64 { return x.ID },
		a, a.logger)
	defer list.Reset()

	list.Load(ctx)
	a.renderArticles(list.Items())

	for {
		if a.expired {
			return nil
		}
		line, err := GetSimpleText(a.reader, "articles: (l)ist, new, edit <id>, delete <id>, back", a.out)
		if err != nil {
			return nil
		}
		cmd, args := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "l", "list":
			list.Load(ctx)
			a.renderArticles(list.Items())
		case "new":
			if a.newArticle(ctx) {
				list.Load(ctx)
				a.renderArticles(list.Items())
			}
		case "edit":
			id, ok := parseID(args)
			if !ok {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			if a.editArticle(ctx, id) {
				list.Load(ctx)
				a.renderArticles(list.Items())
			}
		case "delete":
			id, ok := parseID(args)
			if !ok {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			list.Delete(ctx, id)
			a.renderArticles(list.Items())
		case "b", "back":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) renderArticles(items []models.Article) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No articles")
		return
	}
	for _, x := range items {
		fmt.Fprintf(a.out, "%4d  %-10s  %s\n", x.ID, x.Status, x.Title)
	}
}

func (a *App) newArticle(ctx context.Context) bool {
	form := controllers.NewArticleForm(a.api.Articles, func() {
		fmt.Fprintln(a.out, "Saved")
	})
	return a.fillArticleForm(ctx, form)
}

func (a *App) editArticle(ctx context.Context, id int64) bool {
	form := controllers.EditArticleForm(a.api.Articles, id, func() {
		fmt.Fprintln(a.out, "Saved")
	})
	form.Load(ctx)
	if form.Err() != "" {
		fmt.Fprintln(a.out, form.Err())
	}
	return a.fillArticleForm(ctx, form)
}

// fillArticleForm prompts for every field (current values as defaults) and
// submits. On failure the form's message is shown; the collected values stay
// in the form, but the console flow returns to the screen prompt.
func (a *App) fillArticleForm(ctx context.Context, form *controllers.ArticleForm) bool {
	title, err := GetTextDefault(a.reader, "Enter title", form.Title, a.out)
	if err != nil {
		return false
	}
	form.Title = title

	content, err := GetMultiline(a.reader, "Enter content (double Enter to finish):", a.out)
	if err != nil {
		return false
	}
	if content != "" || !form.IsEdit() {
		form.Content = content
	}

	author, err := GetTextDefault(a.reader, "Enter author", form.Author, a.out)
	if err != nil {
		return false
	}
	form.Author = author

	status, err := GetTextDefault(a.reader, "Enter status (draft/published)", form.Status, a.out)
	if err != nil {
		return false
	}
	form.Status = status

	if !form.Submit(ctx) {
		fmt.Fprintln(a.out, form.Err())
		return false
	}
	return true
}
