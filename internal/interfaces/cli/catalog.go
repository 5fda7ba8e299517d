package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
)

// NewCatalogCmd creates the command listing metrics and linkages.
func NewCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "metrics",
		Aliases: []string{"catalog"},
		Short:   "List the available distance metrics and linkage strategies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintResult(cmd, &catalogOutput{
				Metrics:  distance.MetricCatalog(),
				Linkages: distance.LinkageCatalog(),
			})
		},
	}
}

type catalogOutput struct {
	Metrics  []distance.CatalogEntry `json:"metrics"`
	Linkages []distance.CatalogEntry `json:"linkages"`
}

func (o *catalogOutput) String() string {
	var sb strings.Builder
	section := func(title string, entries []distance.CatalogEntry) {
		sb.WriteString(color.CyanString(title) + "\n")
		for _, e := range entries {
			name := e.Name
			if e.Default {
				name = color.GreenString(name + " (default)")
			}
			fmt.Fprintf(&sb, "  %s\n      %s\n", name, e.Description)
		}
	}
	section("Metrics", o.Metrics)
	sb.WriteString("\n")
	section("Linkages", o.Linkages)
	return sb.String()
}

func (o *catalogOutput) TableHeaders() []string {
	return []string{"Kind", "Name", "Default", "Description"}
}

func (o *catalogOutput) TableRows() [][]string {
	rows := make([][]string, 0, len(o.Metrics)+len(o.Linkages))
	add := func(kind string, entries []distance.CatalogEntry) {
		for _, e := range entries {
			def := ""
			if e.Default {
				def = "yes"
			}
			rows = append(rows, []string{kind, e.Name, def, e.Description})
		}
	}
	add("metric", o.Metrics)
	add("linkage", o.Linkages)
	return rows
}

//Personal.AI order the ending
