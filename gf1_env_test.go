package main

import "testing"

func TestParseUltrasndEnv(t *testing.T) {
	cfg, err := ParseUltrasndEnv("240,1,5,11,2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 0x240 {
		t.Errorf("Port = 0x%X, want 0x240", cfg.Port)
	}
	if cfg.DMA1 != 1 || cfg.DMA2 != 5 || cfg.IRQ1 != 11 || cfg.IRQ2 != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseUltrasndEnvMalformed(t *testing.T) {
	cases := []string{
		"",
		"240,1,5,11",
		"zz,1,5,11,2",
		"240,x,5,11,2",
	}
	for _, c := range cases {
		if _, err := ParseUltrasndEnv(c); err == nil {
			t.Errorf("ParseUltrasndEnv(%q) should have failed", c)
		}
	}
}
