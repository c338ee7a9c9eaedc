package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cmskeeper/internal/client/controllers"
	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// Pages runs the page management screen.
func (a *App) Pages(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	list := controllers.NewListController("page",
		a.api.Pages.List, a.api.Pages.Delete,
		func(x models.Page) int64 { return x.ID },
		a, a.logger)
	defer list.Reset()

	list.Load(ctx)
	a.renderPages(list.Items())

	for {
		if a.expired {
			return nil
		}
		line, err := GetSimpleText(a.reader, "pages: (l)ist, new, edit <id>, delete <id>, back", a.out)
		if err != nil {
			return nil
		}
		cmd, args := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "l", "list":
			list.Load(ctx)
			a.renderPages(list.Items())
		case "new":
			if a.newPage(ctx) {
				list.Load(ctx)
				a.renderPages(list.Items())
			}
		case "edit":
			id, ok := parseID(args)
			if !ok {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			if a.editPage(ctx, id) {
				list.Load(ctx)
				a.renderPages(list.Items())
			}
		case "delete":
			id, ok := parseID(args)
			if !ok {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			list.Delete(ctx, id)
			a.renderPages(list.Items())
		case "b", "back":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) renderPages(items []models.Page) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No pages")
		return
	}
	for _, x := range items {
		fmt.Fprintf(a.out, "%4d  /%-20s  %s\n", x.ID, x.Slug, x.Title)
	}
}

func (a *App) newPage(ctx context.Context) bool {
	form := controllers.NewPageForm(a.api.Pages, func() {
		fmt.Fprintln(a.out, "Saved")
	})
	return a.fillPageForm(ctx, form)
}

func (a *App) editPage(ctx context.Context, id int64) bool {
	form := controllers.EditPageForm(a.api.Pages, id, func() {
		fmt.Fprintln(a.out, "Saved")
	})
	form.Load(ctx)
	if form.Err() != "" {
		fmt.Fprintln(a.out, form.Err())
	}
	return a.fillPageForm(ctx, form)
}

// fillPageForm prompts for the page fields. The slug prompt defaults to the
// derived value; accepting the default keeps derivation alive, typing
// anything else hands the slug to the operator for good.
func (a *App) fillPageForm(ctx context.Context, form *controllers.PageForm) bool {
	title, err := GetTextDefault(a.reader, "Enter title", form.Title, a.out)
	if err != nil {
		return false
	}
	form.SetTitle(title)

	slug, err := GetTextDefault(a.reader, "Enter slug", form.Slug, a.out)
	if err != nil {
		return false
	}
	if slug != form.Slug {
		form.SetSlug(slug)
	}

	content, err := GetMultiline(a.reader, "Enter content (double Enter to finish):", a.out)
	if err != nil {
		return false
	}
	if content != "" || !form.IsEdit() {
		form.Content = content
	}

	if !form.Submit(ctx) {
		fmt.Fprintln(a.out, form.Err())
		return false
	}
	return true
}
