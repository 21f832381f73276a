/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/k1LoW/dressgen"
	"github.com/k1LoW/dressgen/config"
	"github.com/k1LoW/dressgen/handler/console"
	"github.com/k1LoW/dressgen/version"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-colorable"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	configPath string
	out        string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "dressgen",
	Short:        "dressgen generates placeholder dress images",
	Long:         `dressgen generates transparent placeholder dress images into public/dresses.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		g, err := dressgen.New(dressgen.WithLogger(newLogger(cmd)))
		if err != nil {
			return err
		}
		return g.Run(cfg.Out, cfg.Width, cfg.Height)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if verbose {
			b, err := json.MarshalIndent(errors.StackTraces(err), "", "  ")
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
			} else {
				_, _ = fmt.Fprintf(os.Stderr, "%s\n", b)
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVarP(&out, "out", "o", dressgen.DefaultDir, "output directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// loadConfig loads the config file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = out
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	var w io.Writer = cmd.OutOrStdout()
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	h := console.New(slog.NewTextHandler(io.Discard, nil), console.WithWriter(w))
	if !verbose {
		return slog.New(h)
	}
	return slog.New(slogmulti.Fanout(
		h,
		slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
}
