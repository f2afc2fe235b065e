package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
	"github.com/m04kA/SMC-StoreAdmin/pkg/totals"
)

// catalogFile YAML каталог услуг
//
//	services:
//	  - id: corte
//	    name: Corte
//	    value: 29.90
//	    duration: "00:30"
type catalogFile struct {
	Services []catalogEntry `yaml:"services"`
}

type catalogEntry struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Value    float64 `yaml:"value"`
	Duration string  `yaml:"duration"`
}

func loadCatalog(path string) (map[string]totals.LineItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	items := make(map[string]totals.LineItem, len(file.Services))
	for i, s := range file.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog %s: service #%d has no id", path, i+1)
		}
		items[s.ID] = totals.LineItem{Value: s.Value, Duration: s.Duration}
	}
	return items, nil
}

func totalsCmd() *cobra.Command {
	var (
		catalogPath string
		selected    []string
	)

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Sum value and duration of selected services from a YAML catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(selected))
			for _, id := range selected {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}

			result := totals.Aggregate(ids, items)
			found := make(map[string]struct{})
			for _, id := range totals.Found(ids, items) {
				found[id] = struct{}{}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total:    %s\n", mask.Format(strconv.FormatInt(result.TotalCents, 10), mask.Currency))
			fmt.Fprintf(out, "duration: %s\n", result.Duration)
			for _, id := range ids {
				if _, ok := found[id]; !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped:  %s (not in catalog)\n", id)
					found[id] = struct{}{}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "services.yaml", "YAML catalog file")
	cmd.Flags().StringSliceVarP(&selected, "select", "s", nil, "comma-separated service ids")
	return cmd
}
