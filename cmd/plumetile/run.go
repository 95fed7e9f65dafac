package main

import (
	"context"
	"time"

	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/catalog"
	"github.com/wgdzlh/plumelib/pipeline"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Deliver every plume in the catalog, then every referenced scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		if err = s.loadCatalog(); err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()
		return report(s.runner.Run(ctx, s.catalog))
	},
}

var plumeCmd = &cobra.Command{
	Use:   "plume <plume id>...",
	Short: "Deliver selected plumes from the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		if err = s.loadCatalog(); err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()
		var results []pipeline.Result
		for _, id := range args {
			results = append(results, processPlumeByID(ctx, s, id))
		}
		return report(results)
	},
}

var sceneCmd = &cobra.Command{
	Use:   "scene <scene fid>...",
	Short: "Deliver selected full-scene products",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()
		var results []pipeline.Result
		for _, fid := range args {
			start := time.Now()
			res := pipeline.Result{Kind: pipeline.KindScene, ID: fid}
			res.Outputs, res.Err = s.runner.ProcessScene(ctx, plumelib.SceneFID(fid))
			res.Elapsed = time.Since(start)
			results = append(results, res)
		}
		return report(results)
	},
}

func processPlumeByID(ctx context.Context, s *session, id string) (res pipeline.Result) {
	res = pipeline.Result{Kind: pipeline.KindPlume, ID: id}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()
	i, err := s.catalog.IndexOf(id)
	if err != nil {
		res.Err = err
		return
	}
	var p catalog.Plume
	if p, res.Err = s.catalog.Plume(i); res.Err != nil {
		return
	}
	res.Outputs, res.Err = s.runner.ProcessPlume(ctx, p)
	return
}
