// Package otosink plays audio streamed from the card on the host sound
// device through oto.
//
// Build with the headless tag to leave it out on machines without an
// audio stack.
package otosink
