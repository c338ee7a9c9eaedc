package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cmskeeper/internal/client/controllers"
	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// Media runs the uploaded-files screen.
func (a *App) Media(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	list := controllers.NewListController("file",
		a.api.Media.List, a.api.Media.Delete,
		func(x models.Media) int64 { return x.ID },
		a, a.logger)
	defer list.Reset()

	uploader := controllers.NewUploadController(a.api.Media, list, a)

	list.Load(ctx)
	a.renderMedia(list.Items())

	for {
		if a.expired {
			return nil
		}
		line, err := GetSimpleText(a.reader, "media: (l)ist, upload <path>, delete <id>, back", a.out)
		if err != nil {
			return nil
		}
		cmd, args := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "l", "list":
			list.Load(ctx)
			a.renderMedia(list.Items())
		case "upload":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: upload <path>")
				continue
			}
			uploader.Stage(strings.Join(args, " "))
			uploader.Upload(ctx)
			a.renderMedia(list.Items())
		case "delete":
			id, ok := parseID(args)
			if !ok {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			list.Delete(ctx, id)
			a.renderMedia(list.Items())
		case "b", "back":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) renderMedia(items []models.Media) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No files")
		return
	}
	for _, x := range items {
		fmt.Fprintf(a.out, "%4d  %-30s  %-20s  %s\n", x.ID, x.Filename, x.MimeType, formatSize(x.Size))
	}
}
