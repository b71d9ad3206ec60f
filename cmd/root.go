package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/igalhaddad/concurrent-url-downloader/internal/config"
	"github.com/igalhaddad/concurrent-url-downloader/internal/downloader"
	"github.com/igalhaddad/concurrent-url-downloader/internal/output"
	"github.com/igalhaddad/concurrent-url-downloader/internal/utils"
)

var (
	configPath string
	outputDir  string
	workers    int
	userAgent  string
	debug      bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "url-downloader",
	Short:   "Download a list of URLs concurrently with retries and progress reporting",
	Version: Version,
	Args:    cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		log := utils.GetLogger("cli")
		cfg, err := config.Load(configPath)
		if err != nil {
			output.PrintError(fmt.Sprintf("Error: %v", err))
			os.Exit(1)
		}
		if cmd.Flags().Changed("output") {
			cfg.OutputDirectory = outputDir
		}
		if cmd.Flags().Changed("workers") {
			cfg.MaxConcurrentDownloads = workers
		}
		if cmd.Flags().Changed("user-agent") {
			cfg.UserAgent = userAgent
		}
		if err := cfg.Validate(); err != nil {
			output.PrintError(fmt.Sprintf("Configuration error: %v", err))
			os.Exit(1)
		}
		log.Info().Str("config", configPath).Msg("Configuration loaded")

		// Ctrl-C cancels the batch; in-flight URLs settle as interrupted.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		startTime := time.Now()
		results, err := downloader.New(cfg).DownloadAll(ctx)
		if err != nil {
			output.PrintError(fmt.Sprintf("Error during download process: %v", err))
			os.Exit(1)
		}
		printSummary(results, time.Since(startTime), cfg.OutputDirectory)
	},
}

func printSummary(results []downloader.Result, elapsed time.Duration, outputDirectory string) {
	successful := 0
	var totalBytes int64
	for _, res := range results {
		if res.Success {
			successful++
			totalBytes += res.FileSize
		}
	}
	failed := len(results) - successful

	fmt.Println()
	output.PrintHeader("=== Download Summary ===")
	output.PrintDetail(fmt.Sprintf("Total URLs: %d", len(results)))
	output.PrintSuccess(fmt.Sprintf("Successful: %d (%s)", successful, output.FormatBytes(uint64(totalBytes))))
	if failed > 0 {
		output.PrintError(fmt.Sprintf("Failed: %d", failed))
	} else {
		output.PrintDetail("Failed: 0")
	}
	output.PrintDetail(fmt.Sprintf("Total time: %dms", elapsed.Milliseconds()))
	output.PrintDetail(fmt.Sprintf("Output directory: %s", outputDirectory))

	if failed > 0 {
		fmt.Println()
		output.PrintHeader("=== Failed Downloads ===")
		for _, res := range results {
			if !res.Success {
				output.PrintWarning(fmt.Sprintf("%s %s: %s", output.StyleSymbols["bullet"], res.URL, res.ErrorMessage))
			}
		}
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON or YAML configuration file")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Override the configured output directory")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Override the configured number of concurrent downloads")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", "", "Override the configured user agent")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.MarkFlagRequired("config")
}
