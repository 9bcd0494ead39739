package main

import (
	"context"
	"net/url"
	"os"
	"strings"

	"doctor-directory/cmd/bootstrap"
	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "doctor-directory",
		Short:         "Browse a remote doctor directory by name, mode, specialty and sort order",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newQueryCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				return err
			}

			// Run the application
			return app.Run()
		},
	}
}

func newQueryCommand() *cobra.Command {
	var (
		name        string
		mode        string
		specialties []string
		sortKey     string
		match       string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Fetch the directory once and print the doctors matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New(func(cfg *config.Config) {
				if match != "" {
					cfg.Listing.SpecialtyMatch = match
				}
			})
			if err != nil {
				return err
			}
			defer app.Close()

			query := url.Values{}
			query.Set(entity.QueryKeyName, name)
			query.Set(entity.QueryKeyMode, mode)
			query.Set(entity.QueryKeySpecialty, strings.Join(specialties, entity.ListDelimiter))
			query.Set(entity.QueryKeySort, sortKey)

			return app.Query(context.Background(), os.Stdout, query)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name substring, case-insensitive")
	cmd.Flags().StringVar(&mode, "moc", "", "mode of consultation (Video Consult, In Clinic)")
	cmd.Flags().StringSliceVar(&specialties, "specialty", nil, "specialty to require, repeatable")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort by fees or experience")
	cmd.Flags().StringVar(&match, "match", "", "specialty match mode: all or any (default from SPECIALTY_MATCH)")

	return cmd
}
