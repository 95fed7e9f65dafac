package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/catalog"
	"github.com/wgdzlh/plumelib/config"
	"github.com/wgdzlh/plumelib/gdalio"
	"github.com/wgdzlh/plumelib/log"
	"github.com/wgdzlh/plumelib/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// 由构建参数注入
var version = "head"

var (
	v       = config.NewViper()
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "plumetile",
	Short: "Cut methane plume complexes into delivery rasters and quicklooks",
	Long: `plumetile reads a plume catalog (GeoJSON), crops each plume polygon out
of its orthorectified matched-filter raster and writes a compressed science
GeoTIFF, a colorized PNG quicklook and a single-feature GeoJSON per plume.
Every scene referenced by the catalog is delivered as a full-scene product.

Settings come from flags, PLUME_* environment variables, an optional .env
file and an optional config file, in that order.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&envFile, "env-file", "", "env file, defaults to ./.env when present")
	pf.String("source-dir", "", "directory of full-scene matched-filter rasters")
	pf.String("dest-dir", "", "delivery directory")
	pf.String("manual-del-dir", "", "directory of per-DCID rasters and the plume catalog")
	pf.String("catalog", "", "plume catalog, defaults to <manual-del-dir>/"+config.CATALOG_NAME)
	pf.String("software-version", "", "software_build_version tag")
	pf.String("data-version", "", "product_version tag")
	pf.String("cog-script", "", "shell script converting <src> to a COG at <dst>")
	pf.String("compressor", "", "compressor: shell or gdal")
	pf.Int("workers", 0, "concurrent items")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.Bool("log-dev", false, "human-readable console logs")
	for _, key := range []string{
		config.KEY_SOURCE_DIR, config.KEY_DEST_DIR, config.KEY_MANUAL_DEL_DIR, config.KEY_CATALOG,
		config.KEY_SOFTWARE_VERSION, config.KEY_DATA_VERSION, config.KEY_COG_SCRIPT,
		config.KEY_COMPRESSOR, config.KEY_WORKERS, config.KEY_LOG_LEVEL, config.KEY_LOG_DEV,
	} {
		v.BindPFlag(key, pf.Lookup(flagName(key)))
	}
	rootCmd.AddCommand(runCmd, plumeCmd, sceneCmd)
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

type session struct {
	cfg     config.Config
	runner  *pipeline.Runner
	catalog *catalog.Catalog
}

func newSession() (s *session, err error) {
	s = &session{}
	if s.cfg, err = config.Load(v, cfgFile, envFile); err != nil {
		return
	}
	if s.cfg.LogDev {
		log.UseDevelopment()
	}
	if err = log.SetLevel(s.cfg.LogLevel); err != nil {
		return
	}
	var compressor plumelib.Compressor
	switch s.cfg.Compressor {
	case config.COMPRESSOR_GDAL:
		compressor = gdalio.NewTranslateCompressor()
	default:
		compressor = plumelib.NewShellCompressor(s.cfg.CogScript)
	}
	s.runner = pipeline.NewRunner(gdalio.NewGdalToolbox(compressor), pipeline.Options{
		SourceDir:    s.cfg.SourceDir,
		DestDir:      s.cfg.DestDir,
		ManualDelDir: s.cfg.ManualDelDir,
		Workers:      s.cfg.Workers,
		Publication:  plumelib.DefaultPublication(s.cfg.SoftwareVersion, s.cfg.DataVersion, time.Now().UTC()),
	})
	if s.cfg.DataVersion == "" {
		log.Warn("plumetile: data_version not set, plume products will fail")
	}
	log.Info("plumetile: session ready", zap.String("run", s.runner.RunID()), zap.String("catalog", s.cfg.Catalog),
		zap.String("compressor", s.cfg.Compressor), zap.Int("workers", s.cfg.Workers))
	return
}

func (s *session) loadCatalog() (err error) {
	s.catalog, err = catalog.Load(s.cfg.Catalog)
	return
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func report(results []pipeline.Result) error {
	failed := pipeline.Failed(results)
	for _, res := range failed {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", res.Kind, res.ID, res.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d items failed", len(failed), len(results))
	}
	return nil
}
