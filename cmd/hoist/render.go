package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hoist/internal/demo"
	"github.com/vango-dev/hoist/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		mode   string
		path   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the album example to stdout",
		Long: `Render one payload of the album example without starting a server.

Examples:
  hoist render
  hoist render --mode css
  hoist render --mode js --path /album -o album.js`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			m, err := render.ParseMode(mode)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, ferr := os.Create(output)
				if ferr != nil {
					return fmt.Errorf("create output: %w", ferr)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close output: %w", cerr)
					}
				}()
				out = f
			}

			head := demo.Head()
			head.Escape = cfg.Render.Escape
			doc := render.NewDocument(
				render.NewHead(path, head),
				render.WithLang(cfg.Lang),
				render.WithRenderer(render.NewRenderer(render.RendererConfig{
					Compact: cfg.Render.Compact,
					Escape:  cfg.Render.Escape,
				})),
			)
			return renderTo(out, doc, m)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "html", "Payload to render: html, css or js")
	cmd.Flags().StringVar(&path, "path", "/", "URL the page is served at")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func renderTo(w io.Writer, doc *render.Document, mode render.Mode) error {
	resp, err := doc.Render(demo.Page(), mode)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, resp.Body)
	return err
}
