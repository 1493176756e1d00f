package prodsight

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/viper"

	"github.com/mwiater/prodsight/internal/appconfig"
	"github.com/mwiater/prodsight/internal/fixtures"
)

func runShowConfig(out io.Writer, raw bool) {
	cfg := getConfig()
	if raw {
		pp.Fprintln(out, cfg)
		return
	}
	appconfig.ShowConfig(out, viper.ConfigFileUsed(), &cfg, appconfig.Config{})
}

// runShowTables prints the fixed tables and the synthetic label shares.
func runShowTables(out io.Writer, cfg appconfig.Config, raw bool) error {
	ds, _, err := buildDashboard(cfg)
	if err != nil {
		return err
	}
	if raw {
		pp.Fprintln(out, ds.Models, ds.Features, ds.Categories, ds.Alerts, ds.Complaints)
		return nil
	}

	fmt.Fprintf(out, "Seed: %d\n\n", ds.Seed)

	fmt.Fprintln(out, "Model performance:")
	for _, m := range ds.Models {
		fmt.Fprintf(out, "  %-20s acc %5.1f  prec %5.1f  rec %5.1f  f1 %5.1f  auc %5.1f\n", m.Model, m.Accuracy, m.Precision, m.Recall, m.F1, m.AUC)
	}

	fmt.Fprintln(out, "\nFeature importance:")
	shares := fixtures.NormalizedImportance(ds.Features)
	for i, f := range ds.Features {
		fmt.Fprintf(out, "  %-20s %.3f (%.1f%% of top features)\n", f.Feature, f.Importance, shares[i].Importance*100)
	}

	fmt.Fprintln(out, "\nCategory failure rates:")
	for _, c := range ds.Categories {
		fmt.Fprintf(out, "  %-20s %.1f%%\n", c.Category, c.Rate)
	}

	summary := ds.Summary()
	fmt.Fprintf(out, "\nAlert tiers (%d products):\n", summary.AlertTotal)
	for _, a := range ds.Alerts {
		fmt.Fprintf(out, "  %-20s %d\n", a.Name, a.Count)
	}

	fmt.Fprintln(out, "\nTop complaint patterns:")
	for _, c := range ds.Complaints {
		fmt.Fprintf(out, "  %-20s %d\n", c.Pattern, c.Frequency)
	}

	printShares(out, "Trajectories", summary.Trajectories)
	printShares(out, "Clusters", summary.Clusters)
	return nil
}

func printShares(out io.Writer, title string, shares []fixtures.LabelShare) {
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, s := range shares {
		fmt.Fprintf(out, "  %-20s %4d  %5.1f%%  %s\n", s.Label, s.Count, s.Percent, strings.Repeat("▪", int(s.Percent/5)))
	}
}
