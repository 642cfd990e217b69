package rxe

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestNegativeBackrefHintIsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BackrefTableHint = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want a *ConfigError")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("Validate() = %T, want *ConfigError", err)
	}
}
