// Package index maps symbolic file ids to block addresses on a card that
// has no filesystem.
//
// Each asset written to the card carries a unique 5-byte identifier. A
// provisioning run (Build) scans the card for those identifiers and Export
// stores the resulting address table in two reserved blocks. At boot,
// Import reads the table back and, for audio files, the payload size from
// each WAV header.
//
// # Table Format
//
// The table is a flat array of big-endian uint32 addresses in catalog
// order, starting at Layout.IndexBlock and spanning two blocks. Address 0
// means the file is absent; consumers must treat it as a no-op.
//
// Reordering the catalog invalidates every card provisioned with the old
// order.
//
// # Usage
//
//	x := index.New(index.DefaultCatalog, index.DefaultLayout())
//	if err := x.Import(c); err != nil {
//		return err
//	}
//	addr := x.AddressOf(index.HomescreenImage)
package index
