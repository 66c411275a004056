// Package main - Atlas GORM migration support binary
package main

import (
	"context"
	"fmt"
	"os"

	"ariga.io/atlas-provider-gorm/gormschema"
	"github.com/alwitt/qrbook/db"
	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "atlas-migrate",
		Usage: "print the DDL of the QR library tables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "SQL dialect of the statements",
				Value: "sqlite",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			stmts, err := gormschema.New(cmd.String("dialect")).Load(
				&db.SystemEventAuditDBEntry{},
				&db.QRRecordDBEntry{},
				&db.ScanEventDBEntry{},
				&db.FolderDBEntry{},
			)
			if err != nil {
				return fmt.Errorf("failed to load GORM models [%w]", err)
			}
			fmt.Printf("%s\n", stmts)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("Schema generation failed")
	}
}
