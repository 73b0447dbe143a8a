package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	"cropplan/pkg/seed"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type cli struct {
	v   *viper.Viper
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out}
	c.v.SetEnvPrefix("CROPCTL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "cropctl",
		Short: "Crop cycle and profitability calculators",
		Long: `cropctl runs the planning calculators without the server:
cycle lengths from planting and harvest dates, profitability of crop
profiles over an area, and yield statistics of harvest history.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().Bool("json", false, "output JSON")
	_ = c.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(c.cycleCmd(), c.simulateCmd(), c.historyCmd())
	return root
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) table() table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(c.out)
	return tw
}

func (c *cli) cycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Days between planting and harvest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ordering := analytics.ParseOrdering(c.v.GetString("ordering"))
			if c.v.GetBool("lenient") {
				ordering = analytics.OrderingLenient
			}
			planting, harvest := c.v.GetString("planting"), c.v.GetString("harvest")
			n, err := analytics.NewCycleCalculator(ordering).Days(planting, harvest)
			if err != nil {
				return err
			}
			if c.v.GetBool("json") {
				return c.printJSON(map[string]any{"planting_date": planting, "harvest_date": harvest, "cycle": n})
			}
			fmt.Fprintf(c.out, "%d days\n", n)
			return nil
		},
	}
	cmd.Flags().String("planting", "", "planting date (YYYY-MM-DD)")
	cmd.Flags().String("harvest", "", "harvest date (YYYY-MM-DD)")
	cmd.Flags().Bool("lenient", false, "accept harvest before planting")
	cmd.Flags().String("ordering", "strict", "strict|lenient")
	for _, f := range []string{"planting", "harvest", "lenient", "ordering"} {
		_ = c.v.BindPFlag(f, cmd.Flags().Lookup(f))
	}
	return cmd
}

func (c *cli) simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [crop...]",
		Short: "Compare crop profitability over an area",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := seed.Profiles()
			if path := c.v.GetString("profiles"); path != "" {
				got, skipped, err := seed.LoadProfiles(path)
				if err != nil {
					return err
				}
				for _, s := range skipped {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", s)
				}
				profiles = got
			}
			if len(args) > 0 {
				picked, err := pick(profiles, args)
				if err != nil {
					return err
				}
				profiles = picked
			}
			cmp, err := analytics.CompareAll(profiles, c.v.GetFloat64("area"))
			if err != nil {
				return err
			}
			if c.v.GetBool("json") {
				return c.printJSON(cmp)
			}
			tw := c.table()
			tw.AppendHeader(table.Row{"Crop", "Cost", "Revenue", "Profit", "Margin %", "Cycle"})
			for _, r := range cmp.Results {
				if r.Error != "" {
					tw.AppendRow(table.Row{r.CropName, "-", "-", "-", r.Error, r.CycleDays})
					continue
				}
				margin := "n/a"
				if r.MarginDefined() {
					margin = r.MarginPercent.Decimal.StringFixed(2)
				}
				tw.AppendRow(table.Row{r.CropName, r.TotalCost.StringFixed(2), r.TotalRevenue.StringFixed(2),
					r.Profit.StringFixed(2), margin, r.CycleDays})
			}
			tw.AppendFooter(table.Row{"Area (ha)", cmp.Area.String()})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().Float64("area", 50, "area in hectares")
	cmd.Flags().String("profiles", "", "profiles file (csv, xlsx, yaml)")
	_ = c.v.BindPFlag("area", cmd.Flags().Lookup("area"))
	_ = c.v.BindPFlag("profiles", cmd.Flags().Lookup("profiles"))
	return cmd
}

func pick(profiles []entities.CropSimulationProfile, names []string) ([]entities.CropSimulationProfile, error) {
	byName := map[string]entities.CropSimulationProfile{}
	for _, p := range profiles {
		byName[strings.ToLower(p.CropName)] = p
	}
	out := make([]entities.CropSimulationProfile, 0, len(names))
	for _, n := range names {
		p, ok := byName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, fmt.Errorf("unknown crop %q", n)
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *cli) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Yield statistics per field or crop",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := seed.History()
			if path := c.v.GetString("file"); path != "" {
				got, skipped, err := seed.LoadHistory(path)
				if err != nil {
					return err
				}
				for _, s := range skipped {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", s)
				}
				records = got
			}
			rep, err := analytics.Aggregate(records, analytics.AggregateOptions{
				FieldID: c.v.GetString("field"),
				By:      analytics.GroupBy(c.v.GetString("by")),
			})
			if err != nil {
				return err
			}
			if c.v.GetBool("json") {
				return c.printJSON(rep)
			}
			tw := c.table()
			tw.AppendHeader(table.Row{"Group", "Records", "Avg/ha", "Max/ha", "Best season", "Min/ha", "Worst season", "Total"})
			for _, g := range rep.Groups {
				s := g.Stats
				tw.AppendRow(table.Row{g.Label, s.Count, fmt.Sprintf("%.2f", s.AverageYield), s.MaxYield, s.MaxSeason,
					s.MinYield, s.MinSeason, s.TotalYield})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().String("file", "", "history file (csv, xlsx, yaml)")
	cmd.Flags().String("field", analytics.AllFields, "field id or all")
	cmd.Flags().String("by", string(analytics.ByField), "field|crop")
	for _, f := range []string{"file", "field", "by"} {
		_ = c.v.BindPFlag(f, cmd.Flags().Lookup(f))
	}
	return cmd
}
