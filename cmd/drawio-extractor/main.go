package main

import (
	"fmt"
	"os"
	"strings"

	drawioextractor "github.com/hellenic-development/drawio-extractor"
	"github.com/hellenic-development/drawio-extractor/pkg/drawio"
	"github.com/hellenic-development/drawio-extractor/pkg/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = drawio.Version

func main() {
	rootCmd := &cobra.Command{
		Use:   "drawio-extractor [flags] <diagram.drawio> [more files...]",
		Short: "Extract shape data from draw.io diagrams",
		Long:  "A tool to extract shapes, labels, styles, and geometry from draw.io diagram files and render them as tabular reports",
		Args:  cobra.MinimumNArgs(1),
		Run:   run,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("format", "f", "table", "Report format: table, markdown, csv, json, xlsx")
	rootCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout (required for xlsx)")
	rootCmd.Flags().StringP("columns", "c", "", "Comma-separated report columns (default \"id,content,style\")")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log progress while processing")

	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("columns", rootCmd.Flags().Lookup("columns"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("drawio-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("DRAWIO")
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	format, err := report.ParseFormat(viper.GetString("format"))
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	columns, err := drawioextractor.ParseColumns(viper.GetString("columns"))
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	output := viper.GetString("output")
	if format == report.FormatExcel && output == "" {
		red.Println("Error: the xlsx format writes a binary workbook; pass --output")
		os.Exit(1)
	}

	var logger drawioextractor.Logger
	if viper.GetBool("verbose") {
		cyan.Println("\n📐 draw.io Shape Extractor")
		cyan.Println("==========================")
		cyan.Println()
		logger = &cliLogger{}
	}

	var sections []string
	var workbook []report.FileRecords

	// Files are processed strictly in argument order, each end-to-end
	// before the next; the first failure stops the whole run.
	for _, path := range args {
		fmt.Printf("== Processing %s\n", path)

		result, err := drawioextractor.Run(drawioextractor.Options{
			Path:    path,
			Format:  format,
			Columns: columns,
			Logger:  logger,
		})
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		switch {
		case format == report.FormatExcel:
			workbook = append(workbook, report.FileRecords{Path: path, Records: result.Records})
		case output == "":
			fmt.Print(result.Report)
		default:
			sections = append(sections, "== Processing "+path+"\n"+result.Report)
		}
	}

	switch {
	case format == report.FormatExcel:
		if err := report.Workbook(output, workbook, columns); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Printf("✓ Wrote %s\n", output)
	case output != "":
		if err := os.WriteFile(output, []byte(strings.Join(sections, "\n")), 0644); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Printf("✓ Wrote %s\n", output)
	}
}

// cliLogger implements drawioextractor.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
