package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dealerd/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the catalog snapshot",
	}
	root.PersistentFlags().String("catalog", envOr("DEALERD_CATALOG", defaultCatalogPath), "Path to the catalog snapshot file")

	export := &cobra.Command{
		Use:   "export",
		Short: "Print the effective catalog (snapshot or seed) as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(store.Models(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	validate := &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a snapshot file and report structural warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			models, err := catalog.Parse(b)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d models\n", len(models))
			seen := make(map[string]bool, len(models))
			for _, m := range models {
				if m.ID == "" {
					fmt.Fprintf(out, "warning: model %q has no id\n", m.Name)
					continue
				}
				if seen[m.ID] {
					fmt.Fprintf(out, "warning: duplicate id %q\n", m.ID)
				}
				seen[m.ID] = true
				if !catalog.KnownSegment(m.Segment) {
					fmt.Fprintf(out, "warning: %s: unknown segment %q (only listed under \"all\")\n", m.ID, m.Segment)
				}
			}
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Discard the snapshot file and revert to the seed lineup",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("catalog")
			store := catalog.NewStore(path, catalog.Default())
			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "catalog reset to seed lineup")
			return nil
		},
	}

	root.AddCommand(export, validate, reset)
	return root
}

func openStore(cmd *cobra.Command) (*catalog.Store, error) {
	path, _ := cmd.Flags().GetString("catalog")
	store := catalog.NewStore(path, catalog.Default())
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}
