package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/card/hal/sim"
	"github.com/ardnew/softsd/index"
	"github.com/ardnew/softsd/pkg"
)

// defaultAssetGap is the number of blank blocks left between assets.
const defaultAssetGap = 8

// asset is one file laid out in an image.
type asset struct {
	id   index.ID
	data []byte
	addr card.BlockAddress
}

func (a asset) blocks() uint32 {
	return uint32((len(a.data) + card.BlockSize - 1) / card.BlockSize)
}

// parseAsset reads an ID=path argument.
func parseAsset(arg string) (asset, error) {
	name, path, ok := strings.Cut(arg, "=")
	if !ok {
		return asset{}, fmt.Errorf("%w: asset %q, want ID=path", pkg.ErrInvalidParameter, arg)
	}
	id, err := parseID(name)
	if err != nil {
		return asset{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return asset{}, err
	}
	return asset{id: id, data: data}, nil
}

// checkIdentifier verifies that the scan will resolve a to its first block.
func checkIdentifier(catalog index.Catalog, a asset) error {
	e, ok := catalog.Entry(a.id)
	if !ok {
		return fmt.Errorf("%w: %v is not in the catalog", pkg.ErrInvalidParameter, a.id)
	}
	head := a.data[:min(len(a.data), card.BlockSize)]
	if !bytes.Contains(head, e.Identifier[:]) {
		return fmt.Errorf("%w: %v lacks identifier %v in its first block", pkg.ErrInvalidParameter, a.id, e.Identifier)
	}
	return nil
}

func newMkimageCommand(g *globals) *cobra.Command {
	var (
		out     string
		at, gap uint32
		demo    bool
		noIndex bool
		args    []string
	)
	cmd := &cobra.Command{
		Use:   "mkimage",
		Short: "Lay out assets in a card image and index them",
		Long: "Write each asset at consecutive block addresses of a card image file, then scan and persist the index.\n" +
			"Every asset must contain its catalog identifier in its first block.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return fmt.Errorf("%w: --out is required", pkg.ErrInvalidParameter)
			}
			g.image = out
			cfg, err := g.load()
			if err != nil {
				return err
			}
			catalog := index.DefaultCatalog

			var assets []asset
			if demo {
				if assets, err = demoAssets(catalog); err != nil {
					return err
				}
			}
			for _, arg := range args {
				a, err := parseAsset(arg)
				if err != nil {
					return err
				}
				assets = append(assets, a)
			}
			if len(assets) == 0 {
				return fmt.Errorf("%w: no assets given", pkg.ErrInvalidParameter)
			}

			start := card.BlockAddress(at)
			if start == 0 {
				start = card.BlockAddress(cfg.Layout.ScanStart)
			}
			store, err := sim.NewFileStore(out, cfg.Bus.Blocks, false)
			if err != nil {
				return err
			}
			addr := start
			for i := range assets {
				if err := checkIdentifier(catalog, assets[i]); err != nil {
					store.Close()
					return err
				}
				assets[i].addr = addr
				if err := sim.WriteAt(store, uint32(addr), assets[i].data); err != nil {
					store.Close()
					return fmt.Errorf("write %v: %w", assets[i].id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s block %d (%d blocks)\n", assets[i].id, addr, assets[i].blocks())
				addr += card.BlockAddress(assets[i].blocks() + gap)
			}
			if err := store.Sync(); err != nil {
				store.Close()
				return err
			}
			if err := store.Close(); err != nil {
				return err
			}
			if noIndex {
				return nil
			}

			return g.withSession(cmd, func(s *session) error {
				x := s.engine.Index()
				r := index.ScanRange{Start: start, End: addr}
				if err := x.Build(cmd.Context(), s.engine.Card(), r); err != nil {
					return err
				}
				if err := x.Export(s.engine.Card()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "indexed %d files\n", x.Resolved())
				return nil
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "", "card image file to write")
	flags.Uint32Var(&at, "at", 0, "first asset block (default layout.scan_start)")
	flags.Uint32Var(&gap, "gap", defaultAssetGap, "blank blocks between assets")
	flags.BoolVar(&demo, "demo", false, "include generated demo images and audio")
	flags.BoolVar(&noIndex, "no-index", false, "skip building the index")
	flags.StringArrayVar(&args, "asset", nil, "asset as ID=path (repeatable)")
	return cmd
}
