// Package media consumes card streams: it blits BMP images into a display
// window and feeds WAV audio into a playback sink.
//
// # Images
//
// DrawImage reads the 24-bit BMP header from the stream, skips to the pixel
// data and converts each BGR pixel to RGB565 on the fly, one padded row at
// a time. Rows are sent in file order, bottom row first.
//
// # Audio
//
// A Feeder copies one 512-byte block per Service call into an io.Writer,
// normally driven by a timer at the DAC rate. Pause releases the card while
// keeping the position; Resume restarts the stream at the next unplayed
// block.
//
// Every consumer treats address 0 as an absent file and does nothing.
package media
