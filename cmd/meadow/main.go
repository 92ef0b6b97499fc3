// Package main is the meadow client: an instanced grass field with a
// scroll-driven camera and a routed 2D overlay.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/meadow/internal/app"
	"github.com/Faultbox/meadow/internal/app/state"
	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/grass"
	"github.com/Faultbox/meadow/internal/logger"
	"github.com/Faultbox/meadow/internal/router"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cmd := &cobra.Command{
		Use:   "meadow",
		Short: "Scroll-driven grass field",
		Long: `meadow - instanced grass field with a scroll-driven camera

Controls:
  Scroll          - Move the camera (or scroll the page panel)
  Click           - Follow a link, or open the landmark page
  Home            - Rewind the camera
  E               - Expand or collapse the page panel
  Backspace       - Back
  Alt+Left/Right  - Back / forward
  F12             - Screenshot
  Esc             - Quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.PersistentFlags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(flags)
	}

	cmd.AddCommand(
		topologyCmd(flags),
		routesCmd(),
		presetsCmd(),
		configCmd(flags),
	)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "meadow: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("=== Meadow ===",
		zap.String("preset", cfg.Scene.Preset),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

func topologyCmd(flags *config.Flags) *cobra.Command {
	var blades int
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Print blade indices and the first blade placements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			field, err := grass.NewField(state.FieldParams(cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := field.Params()
			fmt.Fprintf(out, "segments:  %d\n", p.Segments)
			fmt.Fprintf(out, "vertices:  %d\n", field.VertexCount())
			fmt.Fprintf(out, "indices:   %d\n", field.IndexCount())
			fmt.Fprintf(out, "instances: %d\n", field.InstanceCount())

			idx := field.Indices()
			for i := 0; i < len(idx); i += 3 {
				fmt.Fprintf(out, "  tri %3d: %d %d %d\n", i/3, idx[i], idx[i+1], idx[i+2])
			}

			n := min(blades, field.InstanceCount())
			for id := 0; id < n; id++ {
				b := grass.Placement(uint32(id), p.PatchSize)
				fmt.Fprintf(out, "  blade %d: x=%.2f z=%.2f yaw=%.3f height=%.3f phase=%.3f\n",
					id, b.X, b.Z, b.Yaw, b.HeightScale, b.Phase)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&blades, "blades", 8, "number of blade placements to print")
	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the overlay routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := router.DefaultTable()
			if err != nil {
				return err
			}
			for _, key := range table.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the scene presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.Presets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", p.Name, p.Description)
			}
		},
	}
}

func configCmd(flags *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to disk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%q already exists (use --force to overwrite)", path)
			}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	return cmd
}
