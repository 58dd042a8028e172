package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "single usable provider",
			cfg:  LLMConfig{Providers: []ProviderConfig{{Name: "openai", Enabled: true, Priority: 1, APIKey: "k"}}},
		},
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name:    "missing credential",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "openai", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		{
			name:    "only disabled providers have keys",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "openai", Priority: 1, APIKey: "k"}}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "k"},
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k"},
			}},
			wantErr: true,
		},
		{
			name:    "non-positive priority",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "openai", Enabled: true, APIKey: "k"}}},
			wantErr: true,
		},
		{
			name:    "unnamed provider",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1, APIKey: "k"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("PA_TEST_KEY", "from-env")
	viper.AutomaticEnv()

	if got := expandEnvVar("${PA_TEST_KEY}"); got != "from-env" {
		t.Errorf("expected from-env, got %q", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expected literal, got %q", got)
	}
	if got := expandEnvVar("${PA_TEST_UNSET_KEY}"); got != "" {
		t.Errorf("expected unresolved reference to expand to empty, got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a , ,http://b")
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Errorf("unexpected %v", got)
	}
}
