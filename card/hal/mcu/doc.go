// Package mcu connects the card driver to a microcontroller SPI peripheral
// under TinyGo, through the tinygo.org/x/drivers SPI interface and a GPIO
// chip select.
//
//	spi := machine.SPI0
//	cfg := machine.SPIConfig{Mode: 0}
//	bus := mcu.New(spi, machine.D10, func(hz uint32) error {
//		cfg.Frequency = hz
//		return spi.Configure(cfg)
//	})
package mcu
