// Package engine ties the card driver and the file index together into the
// storage engine a device boots.
//
// Boot runs the card initialization sequence, imports the file index and
// only then raises the bus clock. If the card fails, the index stays empty
// and every file resolves to address 0, so features that depend on media
// render nothing instead of failing.
//
// Any code path that can be preempted by navigation, a low-battery warning
// or sleep must call Interrupt first, which stops an open stream so the
// bus is never left mid-transfer.
package engine
