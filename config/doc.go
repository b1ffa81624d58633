// Package config loads the YAML configuration shared by the command-line
// tools.
//
// A file has four sections:
//
//	bus:
//	  transceiver: image        # sim, image, spidev or buspirate
//	  image: card.img
//	  blocks: 8388608
//	card:
//	  slow_clock_hz: 250000
//	  fast_clock_hz: 8000000
//	layout:
//	  index_block: 4000000
//	  scan_start: 15000
//	log:
//	  level: info
//	  format: json
//
// Omitted fields take the device defaults. Load normalizes, then
// validates, and reports every problem found at once.
package config
