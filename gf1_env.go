// gf1_env.go - ULTRASND environment variable parsing

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is the card configuration a DOS-era autoexec would have exported
// through ULTRASND. No other code in the module (demo and console modes
// included) calls ParseUltrasndEnv or reads a Config; Engine itself never
// reads the environment.
type Config struct {
	Port int
	DMA1 int
	DMA2 int
	IRQ1 int
	IRQ2 int
	Path string // ULTRADIR; ParseUltrasndEnv leaves it empty
}

// ParseUltrasndEnv parses "port(hex),dma1,dma2,irq1,irq2" as exported in
// ULTRASND. The port is hex without a leading "0x", matching the format
// DOS-side configuration tools wrote.
func ParseUltrasndEnv(value string) (Config, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 5 {
		return Config{}, fmt.Errorf("gf1: malformed ULTRASND %q: want 5 comma-separated fields, got %d", value, len(fields))
	}

	port, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 16, 32)
	if err != nil {
		return Config{}, fmt.Errorf("gf1: bad ULTRASND port %q: %w", fields[0], err)
	}

	ints := make([]int, 4)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Config{}, fmt.Errorf("gf1: bad ULTRASND field %q: %w", f, err)
		}
		ints[i] = n
	}

	return Config{
		Port: int(port),
		DMA1: ints[0],
		DMA2: ints[1],
		IRQ1: ints[2],
		IRQ2: ints[3],
	}, nil
}
