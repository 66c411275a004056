// Package main - QR library command line tool
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alwitt/qrbook"
	"github.com/alwitt/qrbook/bulkimport"
	"github.com/alwitt/qrbook/config"
	"github.com/alwitt/qrbook/models"
	"github.com/alwitt/qrbook/query"
	"github.com/alwitt/qrbook/store"
	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// withLibrary open the library named by the environment settings for one command
func withLibrary(
	ctx context.Context, action func(ctx context.Context, library store.Library) error,
) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	settings.ApplyLogLevel()

	library, persistence, err := qrbook.NewLibrary(ctx, settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.Close(); err != nil {
			log.WithError(err).Error("Failed to close library database")
		}
	}()

	return action(ctx, library)
}

func printJSON(value interface{}) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output [%w]", err)
	}
	fmt.Println(string(raw))
	return nil
}

func templateCommand() *cli.Command {
	return &cli.Command{
		Name:  "template",
		Usage: "print a bulk import template",
		Action: func(_ context.Context, _ *cli.Command) error {
			raw, err := bulkimport.GenerateTemplate()
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "bulk import QR codes from a JSON document",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("import requires exactly one document file")
			}
			raw, err := os.ReadFile(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("failed to read import document [%w]", err)
			}
			return withLibrary(ctx, func(ctx context.Context, library store.Library) error {
				result, err := library.Import(ctx, raw)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "print the export document of the library",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return withLibrary(ctx, func(ctx context.Context, library store.Library) error {
				raw, err := library.Export(ctx)
				if err != nil {
					return err
				}
				fmt.Println(string(raw))
				return nil
			})
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list QR codes in the library",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Usage: "search text over title, data, and tags"},
			&cli.StringFlag{Name: "type", Usage: "only list this QR code type"},
			&cli.StringSliceFlag{Name: "tag", Usage: "only list codes carrying all these tags"},
			&cli.StringFlag{Name: "folder", Usage: "only list codes in this folder"},
			&cli.BoolFlag{Name: "favorites", Usage: "only list favorites"},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "sort order: lastUsed, newest, nameAZ, mostUsed",
				Value: string(query.SortLastUsed),
			},
			&cli.StringFlag{
				Name:  "view",
				Usage: "library view: all, favorites, recent",
				Value: string(query.ViewAll),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			state := query.NewState()
			state.SearchText = cmd.String("search")
			state.Sort = query.ParseSortOption(cmd.String("sort"))
			state.FavoritesOnly = cmd.Bool("favorites")
			state.TagFilter = cmd.StringSlice("tag")
			if raw := cmd.String("type"); raw != "" {
				kind, ok := models.LookupKind(raw)
				if !ok {
					return fmt.Errorf("unknown QR code type '%s'", raw)
				}
				state.TypeFilter = &kind
			}
			if cmd.IsSet("folder") {
				folder := cmd.String("folder")
				state.FolderFilter = &folder
			}
			mode := query.ParseViewMode(cmd.String("view"))

			return withLibrary(ctx, func(ctx context.Context, library store.Library) error {
				records, err := library.Query(ctx, mode, state)
				if err != nil {
					return err
				}
				for _, record := range records {
					fmt.Printf("%s  %-10s  %s\n", record.ID, record.Kind, record.Title)
				}
				return nil
			})
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show one QR code",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("show requires exactly one record ID")
			}
			return withLibrary(ctx, func(ctx context.Context, library store.Library) error {
				record, err := library.GetRecord(ctx, cmd.Args().First())
				if err != nil {
					return err
				}
				return printJSON(record)
			})
		},
	}
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "record one scan of a QR code",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("scan requires exactly one record ID")
			}
			return withLibrary(ctx, func(ctx context.Context, library store.Library) error {
				event, err := library.RecordScan(ctx, cmd.Args().First())
				if err != nil {
					return err
				}
				return printJSON(event)
			})
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "qrbook",
		Usage: "saved QR code library",
		Commands: []*cli.Command{
			templateCommand(),
			importCommand(),
			exportCommand(),
			listCommand(),
			showCommand(),
			scanCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("Command failed")
	}
}
