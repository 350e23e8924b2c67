// SPDX-License-Identifier: Apache-2.0
package cmdutil

import (
	"testing"

	"github.com/Work-Fort/GpgAssist/pkg/cmdline"
	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/spf13/viper"
)

func TestSynthesizer(t *testing.T) {
	tests := []struct {
		name       string
		quote      string
		version    string
		wantQuote  cmdline.QuoteMode
		wantTarget string
		wantErr    bool
	}{
		{"defaults", "none", "", cmdline.QuoteNone, "", false},
		{"shell quoting", "shell", "latest", cmdline.QuoteShell, "", false},
		{"old gnupg", "none", "2.0.22", cmdline.QuoteNone, "2.0.22", false},
		{"bad quote", "double", "", cmdline.QuoteNone, "", true},
		{"bad version", "none", "two", cmdline.QuoteNone, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set(config.KeyQuote, tt.quote)
			viper.Set(config.KeyGnuPGVersion, tt.version)

			synth, err := Synthesizer()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Synthesizer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if synth.Quote != tt.wantQuote {
				t.Errorf("Quote = %v, want %v", synth.Quote, tt.wantQuote)
			}
			if tt.wantTarget == "" {
				if synth.Target != nil {
					t.Errorf("Target = %v, want nil", synth.Target)
				}
				return
			}
			if synth.Target == nil || synth.Target.String() != tt.wantTarget {
				t.Errorf("Target = %v, want %s", synth.Target, tt.wantTarget)
			}
		})
	}
}
