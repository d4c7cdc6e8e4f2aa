package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bidlevel/bidlevel/config"
	"github.com/bidlevel/bidlevel/core"
	"github.com/bidlevel/bidlevel/snapshot"
	"github.com/bidlevel/bidlevel/tabio"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "bidders",
		Usage: "bid tab CSV to evaluate",
	},
	&cli.StringFlag{
		Name:  "snapshot",
		Usage: "saved project snapshot to evaluate",
	},
	&cli.StringFlag{
		Name:  "settings",
		Usage: "evaluation settings file (YAML or JSON)",
	},
}

var reportCmd = &cli.Command{
	Name:  "report",
	Usage: "Print the leveling report for a bid tab",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "contractor",
			Usage: "also list the combinations won by this contractor",
		},
	}, inputFlags...),
	Action: func(c *cli.Context) error {
		bidders, cfg, err := loadInputs(c)
		if err != nil {
			return err
		}

		report := core.Evaluate(bidders, cfg)
		printReport(os.Stdout, report, cfg)

		if name := c.String("contractor"); name != "" {
			id, err := bidderIDByName(bidders, name)
			if err != nil {
				return err
			}
			printWonBy(os.Stdout, core.WonBy(report.FilteredCombinations, id), name)
		}
		return nil
	},
}

var exportCmd = &cli.Command{
	Name:  "export",
	Usage: "Write the combination table as CSV",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "output CSV path",
		},
	}, inputFlags...),
	Action: func(c *cli.Context) error {
		bidders, cfg, err := loadInputs(c)
		if err != nil {
			return err
		}

		f, err := os.Create(c.String("out"))
		if err != nil {
			return fmt.Errorf("create output file failed: %w", err)
		}
		defer f.Close()

		report := core.Evaluate(bidders, cfg)
		return tabio.ExportCombinations(f, report.AllCombinations, bidders)
	},
}

var saveCmd = &cli.Command{
	Name:  "save",
	Usage: "Save a bid tab and settings as a project snapshot",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "output snapshot path",
		},
	}, inputFlags...),
	Action: func(c *cli.Context) error {
		bidders, cfg, err := loadInputs(c)
		if err != nil {
			return err
		}
		return snapshot.Save(c.String("out"), bidders, cfg)
	},
}

// loadInputs resolves the bidder records and evaluation config from the
// input flags. A snapshot carries its own config; an explicit settings file
// overrides it, with bidder price sequences reconciled to the new count.
func loadInputs(c *cli.Context) ([]core.Bidder, core.Config, error) {
	snapshotPath := c.String("snapshot")
	biddersPath := c.String("bidders")
	settingsPath := c.String("settings")

	if snapshotPath != "" {
		bidders, cfg, err := snapshot.Load(snapshotPath)
		if err != nil {
			return nil, core.Config{}, err
		}
		if settingsPath != "" {
			s, err := config.Load(settingsPath)
			if err != nil {
				return nil, core.Config{}, err
			}
			cfg = s.Core()
			bidders = core.ResizeBidders(bidders, cfg.AlternateCount)
		}
		return bidders, cfg, nil
	}

	if biddersPath == "" {
		return nil, core.Config{}, fmt.Errorf("either --bidders or --snapshot is required")
	}

	s, err := config.Load(settingsPath)
	if err != nil {
		return nil, core.Config{}, err
	}
	cfg := s.Core()

	f, err := os.Open(biddersPath)
	if err != nil {
		return nil, core.Config{}, fmt.Errorf("open bid tab failed: %w", err)
	}
	defer f.Close()

	bidders, err := tabio.ImportBidders(f, cfg)
	if err != nil {
		return nil, core.Config{}, err
	}
	return bidders, cfg, nil
}

func bidderIDByName(bidders []core.Bidder, name string) (string, error) {
	for _, b := range bidders {
		if b.Name == name {
			return b.ID, nil
		}
	}
	return "", fmt.Errorf("no bidder named %q", name)
}
