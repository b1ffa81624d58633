// Package buspirate reaches a card through a Bus Pirate's binary SPI mode
// over a serial port, so a card can be provisioned from any host with a
// USB serial adapter.
//
// Chip select, bulk transfers and the clock each map onto one binary-mode
// command. Clocks are rounded down to the nearest of the eight rates the
// Bus Pirate supports, 30 kHz to 8 MHz.
package buspirate
