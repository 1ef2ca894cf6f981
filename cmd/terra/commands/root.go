package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dixieflatline76/Terra/config"
	"github.com/dixieflatline76/Terra/pkg/desktop"
	"github.com/dixieflatline76/Terra/pkg/epic"
	"github.com/dixieflatline76/Terra/pkg/wallpaper"
	"github.com/dixieflatline76/Terra/util/log"
)

var rootCmd = &cobra.Command{
	Use:   "terra <WIDTHxHEIGHT>",
	Short: "Set the latest NASA EPIC Earth image as your desktop wallpaper",
	Long: `Terra fetches the most recent natural-color Earth image from NASA's
EPIC imagery API, resizes it to the given resolution, and applies it as
the desktop wallpaper.

The resized image is kept at ~/Pictures/SatelliteWallpaper even when no
supported desktop environment is detected.`,
	Args: validateResolutionArg,
	RunE: run,
}

// Execute runs the root command and exits 1 on any fatal pipeline error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "https://epic.gsfc.nasa.gov/api/natural", "EPIC metadata endpoint")
	rootCmd.PersistentFlags().String("archive-url", "https://epic.gsfc.nasa.gov/archive/natural", "EPIC image archive base URL")
	rootCmd.PersistentFlags().String("latest", "last", "which metadata array element is the newest capture (first|last)")
	rootCmd.PersistentFlags().String("output-dir", "", "wallpaper output directory (default ~/Pictures/SatelliteWallpaper)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "HTTP connect/read timeout")

	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("archive-url", rootCmd.PersistentFlags().Lookup("archive-url"))
	viper.BindPFlag("latest", rootCmd.PersistentFlags().Lookup("latest"))
	viper.BindPFlag("output-dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// validateResolutionArg rejects a bad or missing resolution argument
// before any network work happens.
func validateResolutionArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one argument: a WIDTHxHEIGHT resolution, e.g. 1920x1080")
	}
	if _, err := wallpaper.ParseResolution(args[0]); err != nil {
		return err
	}
	return nil
}

// run executes the pipeline: locate, download, resize, apply. The apply
// step never fails the run; the resized file on disk is the deliverable.
func run(cmd *cobra.Command, args []string) error {
	// Argument validation has passed; errors from here on are pipeline
	// failures, not usage errors.
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res, err := wallpaper.ParseResolution(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client := wallpaper.NewHTTPClient(cfg.Timeout)

	record, err := epic.NewClient(cfg, client).Latest(ctx)
	if err != nil {
		return err
	}
	log.Printf("Latest EPIC image: %s", record.RemoteURL)

	outDir, err := cfg.ResolveOutputDir()
	if err != nil {
		return err
	}
	dest, err := wallpaper.OutputPath(outDir, record.Name, res)
	if err != nil {
		return err
	}

	if err := wallpaper.Download(ctx, client, record.RemoteURL, dest); err != nil {
		return err
	}
	if err := wallpaper.Resize(dest, res); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wallpaper written to %s\n", dest)

	if err := desktop.NewSetter().Apply(dest); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return nil
}
