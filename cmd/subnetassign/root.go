package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/christophbittig/network-subnet-assignment/internal/adapters/consolewriter"
	"github.com/christophbittig/network-subnet-assignment/internal/adapters/csvwriter"
	"github.com/christophbittig/network-subnet-assignment/internal/adapters/filesource"
	"github.com/christophbittig/network-subnet-assignment/internal/app"
	"github.com/christophbittig/network-subnet-assignment/internal/config"
	"github.com/christophbittig/network-subnet-assignment/internal/domain"
	"github.com/christophbittig/network-subnet-assignment/internal/domain/subnetplan"
	"github.com/christophbittig/network-subnet-assignment/internal/logger"
	"github.com/christophbittig/network-subnet-assignment/internal/ports"
)

var errBadLocationCode = errors.New("location code must be exactly 3 characters")

func newRootCmd() *cobra.Command {
	var (
		baseCIDR     string
		networksFile string
		locationCode string
		companyName  string
		outputCSV    string
		cfgFile      string
	)

	root := &cobra.Command{
		Use:   "subnetassign",
		Short: "Assign subnets to requested networks based on a base CIDR network",
		Example: `	subnetassign -s 192.0.0.0/22 -j networks.json -l BER -c "ACME GmbH"
	subnetassign -s 192.0.0.0/22 -j networks.yaml -l BER -c "ACME GmbH" -o plan.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Флаги имеют приоритет над файлом конфигурации.
			if companyName != "" {
				cfg.Site.Company = companyName
			}
			if locationCode != "" {
				cfg.Site.LocationCode = locationCode
			}
			if outputCSV != "" {
				cfg.Output.CSVFile = outputCSV
			}

			return run(cmd, cfg, baseCIDR, networksFile)
		},
	}

	root.Flags().StringVarP(&baseCIDR, "base-cidr", "s", "", "the base CIDR network to use")
	root.Flags().StringVarP(&networksFile, "networks-file", "j", "", "the JSON or YAML file containing the network definitions")
	root.Flags().StringVarP(&locationCode, "location-code", "l", "", "the 3-character location code to use")
	root.Flags().StringVarP(&companyName, "company-name", "c", "", "the company name to use")
	root.Flags().StringVarP(&outputCSV, "output-csv", "o", "", "the file path for csv output")
	root.Flags().StringVar(&cfgFile, "config", "", "path to configuration file")
	_ = root.MarkFlagRequired("base-cidr")
	_ = root.MarkFlagRequired("networks-file")

	root.AddCommand(newVersionCmd())
	return root
}

func run(cmd *cobra.Command, cfg *config.Config, baseCIDR, networksFile string) error {
	// --------- Инициализация логгера ---------
	var logg *logger.Logger
	if cfg.Logger.File != "" {
		f, err := os.OpenFile(cfg.Logger.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logg = logger.NewWithWriter(f, &cfg.Logger)
	} else {
		// лог в stderr, план — в stdout
		logg = logger.NewWithWriter(cmd.ErrOrStderr(), &cfg.Logger)
	}

	if len(cfg.Site.LocationCode) != 3 {
		return fmt.Errorf("%w: %q", errBadLocationCode, cfg.Site.LocationCode)
	}

	base, err := subnetplan.ParseBlock(baseCIDR)
	if err != nil {
		return fmt.Errorf("base network: %w", err)
	}

	meta := domain.SiteMeta{
		Company:      cfg.Site.Company,
		LocationCode: cfg.Site.LocationCode,
	}

	// --------- Сборка сервиса: источник, план, вывод ---------
	writers := []ports.PlanWriter{consolewriter.New(cmd.OutOrStdout())}
	if cfg.Output.CSVFile != "" {
		writers = append(writers, csvwriter.New(cfg.Output.CSVFile))
	}

	svc := app.NewAssignmentService(filesource.New(networksFile), meta, writers...)

	logg.Info("assigning subnets", "base", base.String(), "networks_file", networksFile)
	if err := svc.Run(cmd.Context(), base); err != nil {
		return err
	}

	if cfg.Output.CSVFile != "" {
		logg.Info("plan saved", "csv_file", cfg.Output.CSVFile)
	}
	return nil
}
