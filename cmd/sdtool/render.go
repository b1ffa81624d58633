package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/ardnew/softsd/media"
	"github.com/ardnew/softsd/pkg"
)

func newRenderCommand(g *globals) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render <ID>",
		Short: "Stream an image through the display path into a BMP file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				return fmt.Errorf("%w: --out is required", pkg.ErrInvalidParameter)
			}
			return g.withSession(cmd, func(s *session) error {
				r, err := s.engine.Index().Lookup(id)
				if err != nil {
					return err
				}
				c := s.engine.Card()
				w, h, err := media.ImageSize(c, r.Address)
				if err != nil {
					return err
				}
				fb := media.NewFramebuffer(w, h)
				if err := media.DrawImage(c, r.Address, fb.Bounds(), fb, nil); err != nil {
					return err
				}

				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := bmp.Encode(f, fb.Image()); err != nil {
					f.Close()
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v: %dx%d from block %d\n", id, w, h, r.Address)
				return f.Close()
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "BMP file to write")
	return cmd
}
