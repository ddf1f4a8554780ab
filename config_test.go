package rotary

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero touch angle", func(c *Config) { c.TouchAngle = 0 }},
		{"negative touch angle", func(c *Config) { c.TouchAngle = -0.1 }},
		{"zero gesture min", func(c *Config) { c.GestureMinRadius = 0 }},
		{"inverted gesture annulus", func(c *Config) { c.GestureMaxRadius = c.GestureMinRadius / 2 }},
		{"zero cancel min", func(c *Config) { c.CancelMinRadius = 0 }},
		{"inverted cancel annulus", func(c *Config) { c.CancelMaxRadius = c.CancelMinRadius }},
		{"zero tick angle", func(c *Config) { c.TickAngle = 0 }},
		{"zero accept fraction", func(c *Config) { c.AcceptFraction = 0 }},
		{"accept fraction above one", func(c *Config) { c.AcceptFraction = 1.01 }},
		{"negative base duration", func(c *Config) { c.ReturnBase = -0.1 }},
		{"negative extra duration", func(c *Config) { c.ReturnExtra = -0.1 }},
		{"negative min duration", func(c *Config) { c.ReturnMin = -0.1 }},
		{"inverted duration clamp", func(c *Config) { c.ReturnMin = 1; c.ReturnMax = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigNilEasingAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Easing = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if cfg.easing() == nil {
		t.Error("easing() = nil, want OutCubic fallback")
	}
}

func TestNewDialRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AcceptFraction = 2
	if _, err := NewDial(cfg, 200); err == nil {
		t.Error("NewDial with invalid config returned nil error")
	}
}
