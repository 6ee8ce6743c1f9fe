// Package main provides the domainctl binary: a CLI for inspecting,
// validating, and exporting knowledge-domain definitions.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Nireus79/Socrates2-sub006/config"
	"github.com/Nireus79/Socrates2-sub006/domain"
	"github.com/Nireus79/Socrates2-sub006/registry"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configDir string
		builtins  bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "domainctl",
		Short: "Inspect and validate knowledge-domain definitions",
		Long: `domainctl works with declarative knowledge-domain definitions.

A domain bundles questions, export formats, conflict rules, and quality
analyzers for one knowledge area. Definitions come from YAML files in a
configuration directory, from the built-in domains, or both.

Examples:
  domainctl list --builtin                 # List the built-in domains
  domainctl list --config ./domains        # List domains from a directory
  domainctl validate --config ./domains    # Validate definitions, report rejections
  domainctl export programming --builtin   # Dump a domain back to YAML
  domainctl questions security --builtin --category threat-model
`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&configDir, "config", "", "Directory of domain definition YAML files")
	cmd.PersistentFlags().BoolVar(&builtins, "builtin", false, "Include the built-in domains")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(listCmd(&configDir, &builtins))
	cmd.AddCommand(validateCmd(&configDir, &builtins))
	cmd.AddCommand(exportCmd(&configDir, &builtins))
	cmd.AddCommand(questionsCmd(&configDir, &builtins))
	return cmd
}

// buildRegistry assembles a registry from the built-in domains and/or a
// configuration directory.
func buildRegistry(configDir string, builtins bool) (*registry.Registry, *config.Summary, error) {
	reg := registry.New(registry.WithLogger(slog.Default()))

	if builtins {
		if _, err := registry.RegisterBuiltins(reg); err != nil {
			return nil, nil, err
		}
	}

	var summary *config.Summary
	if configDir != "" {
		loader := config.NewLoader(slog.Default())
		var err error
		summary, err = loader.LoadDir(reg, configDir, "")
		if err != nil {
			return nil, nil, err
		}
	}

	if reg.Len() == 0 {
		return nil, nil, fmt.Errorf("no domains loaded; pass --config or --builtin")
	}
	return reg, summary, nil
}

func listCmd(configDir *string, builtins *bool) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loaded domains with per-subsystem record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(*configDir, *builtins)
			if err != nil {
				return err
			}

			infos := reg.Metadata()
			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(infos)
			}

			fmt.Printf("%-16s %-24s %-10s %9s %8s %7s %9s\n",
				"ID", "NAME", "VERSION", "QUESTIONS", "FORMATS", "RULES", "ANALYZERS")
			for _, info := range infos {
				fmt.Printf("%-16s %-24s %-10s %9d %8d %7d %9d\n",
					info.DomainID, info.Name, info.Version,
					info.Questions, info.ExportFormats, info.ConflictRules, info.QualityAnalyzers)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	return cmd
}

func validateCmd(configDir *string, builtins *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate domain definitions and report rejected records",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, summary, err := buildRegistry(*configDir, *builtins)
			if err != nil {
				return err
			}

			dirty := false
			if summary != nil {
				for _, file := range summary.Files {
					if file.Err != nil {
						dirty = true
						fmt.Printf("FAIL %s: %v\n", file.Path, file.Err)
						continue
					}
					printBuildReport(file.Report, file.Path)
					if !file.Report.Clean() {
						dirty = true
					}
				}
			}

			// Revalidate every registered domain, builtins included.
			for _, id := range reg.DomainIDs() {
				d, _ := reg.Get(id)
				report := d.ValidateAll()
				if !report.Clean() {
					dirty = true
					printBuildReport(report, "registered domain "+id)
				}
			}

			if dirty {
				return fmt.Errorf("validation found rejected records")
			}
			fmt.Printf("OK: %d domain(s) valid\n", reg.Len())
			return nil
		},
	}
}

func printBuildReport(report *domain.BuildReport, source string) {
	if report.Clean() {
		fmt.Printf("ok   %s: %d record(s)\n", source, report.Accepted())
		return
	}
	fmt.Printf("WARN %s: %d accepted, %d rejected\n", source, report.Accepted(), report.Rejected())
	for _, sub := range []*domain.LoadReport{
		report.Questions, report.ExportFormats, report.ConflictRules, report.QualityAnalyzers,
	} {
		for _, rej := range sub.Rejections {
			fmt.Printf("     %s: %s\n", sub.Kind, rej.String())
		}
	}
}

func exportCmd(configDir *string, builtins *bool) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <domain-id>",
		Short: "Serialize a domain definition back to YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(*configDir, *builtins)
			if err != nil {
				return err
			}

			d, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("domain %q not found (known: %v)", args[0], reg.DomainIDs())
			}

			cfg := d.Serialize()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(cfg)
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}

func questionsCmd(configDir *string, builtins *bool) *cobra.Command {
	var (
		category   string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "questions <domain-id>",
		Short: "List a domain's questions, optionally filtered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(*configDir, *builtins)
			if err != nil {
				return err
			}

			d, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("domain %q not found (known: %v)", args[0], reg.DomainIDs())
			}

			spec := domain.FilterSpec{}
			if category != "" {
				spec["category"] = category
			}
			if difficulty != "" {
				spec["difficulty"] = difficulty
			}

			questions, err := d.Questions(spec)
			if err != nil {
				return err
			}
			for _, q := range questions {
				fmt.Printf("%-24s [%s/%s] %s\n", q.ID, q.Category, q.Difficulty, q.Text)
			}
			fmt.Printf("%d question(s)\n", len(questions))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Filter by difficulty")
	return cmd
}
