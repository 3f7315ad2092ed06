package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/config"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

var (
	workspacePath string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "glyphed",
	Short: "Inspect glyphed workspace dumps",
	Long:  "glyphed reads YAML workspace dumps and reports glyph metadata, side bearings, and resolved kerning.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			glyphed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "List the glyphs in a workspace",
	Args:  cobra.NoArgs,
	RunE:  runGlyphs,
}

var glyphCmd = &cobra.Command{
	Use:   "glyph <name>",
	Short: "Show one glyph's metadata, outline summary, and side bearings",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlyph,
}

var kernCmd = &cobra.Command{
	Use:   "kern <left> <right>",
	Short: "Resolve the kerning between two glyphs",
	Long:  "Resolve the kerning adjustment between two glyphs through the pair and group tables, using each glyph's primary groups as hints.",
	Args:  cobra.ExactArgs(2),
	RunE:  runKern,
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir> [dir...]",
	Short: "Watch font source directories and report debounced changes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

var configInitCmd = &cobra.Command{
	Use:   "config-init <path>",
	Short: "Write the default editor settings to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspacePath, "workspace", "w", "", "path to a YAML workspace dump")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(glyphCmd)
	rootCmd.AddCommand(kernCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configInitCmd)
}

func loadWorkspace() (*font.Workspace, error) {
	if workspacePath == "" {
		return nil, fmt.Errorf("--workspace is required")
	}
	var counter entity.Counter
	ws, err := font.LoadWorkspace(workspacePath, &counter)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func runGlyphs(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	names := ws.GlyphNames()
	sort.Strings(names)
	for _, name := range names {
		g, ok := ws.Glyph(name)
		if !ok {
			continue
		}
		fmt.Printf("%-20s width=%g codepoints=%s\n", name, g.Width, string(g.Codepoints))
	}
	return nil
}

func runGlyph(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	name := args[0]
	g, ok := ws.Glyph(name)
	if !ok {
		return fmt.Errorf("no glyph %q in workspace", name)
	}

	fmt.Printf("glyph:      %s\n", g.Name)
	fmt.Printf("width:      %g\n", g.Width)
	fmt.Printf("codepoints: %q\n", string(g.Codepoints))
	fmt.Printf("lsb:        %g\n", g.LeftSideBearing())
	fmt.Printf("rsb:        %g\n", g.RightSideBearing())
	if g.LeftGroup != "" {
		fmt.Printf("left group: %s\n", g.LeftGroup)
	}
	if g.RightGroup != "" {
		fmt.Printf("right group: %s\n", g.RightGroup)
	}
	for i, c := range g.Contours {
		on := 0
		for _, p := range c.Points {
			if p.Type.IsOnCurve() {
				on++
			}
		}
		fmt.Printf("contour %d:  %d points (%d on-curve)\n", i, len(c.Points), on)
	}
	for _, comp := range g.Components {
		fmt.Printf("component:  %s\n", comp.Base)
	}
	return nil
}

func runKern(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	left, right := args[0], args[1]

	// The glyphs' primary groups serve as lookup hints when present.
	var leftGroup, rightGroup string
	if g, ok := ws.Glyph(left); ok {
		leftGroup = g.LeftGroup
	}
	if g, ok := ws.Glyph(right); ok {
		rightGroup = g.RightGroup
	}

	v := ws.KernValue(left, leftGroup, right, rightGroup)
	fmt.Printf("%g\n", v)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := font.NewWatcher(args, font.DefaultDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	fmt.Println("watching; ctrl-c to stop")
	for {
		select {
		case <-w.Changed():
			fmt.Println("sources changed")
		case <-interrupt:
			return nil
		}
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Default().Save(args[0]); err != nil {
		return err
	}
	fmt.Printf("wrote default settings to %s\n", args[0])
	return nil
}
