package config

import (
	"context"
	"testing"

	"webfetch-api/pkg/featureflags"
)

func TestNewExtractionConfig_Defaults(t *testing.T) {
	cfg := NewExtractionConfig()

	if !cfg.ReadabilityFallback || !cfg.FeedParsing || !cfg.SiteProfiles {
		t.Errorf("default config should enable everything, got %+v", cfg)
	}
}

func TestNewExtractionConfig_Options(t *testing.T) {
	cfg := NewExtractionConfig(WithReadability(false), WithProfiles(false))

	if cfg.ReadabilityFallback {
		t.Error("ReadabilityFallback should be disabled")
	}
	if cfg.SiteProfiles {
		t.Error("SiteProfiles should be disabled")
	}
	if !cfg.FeedParsing {
		t.Error("FeedParsing should stay enabled")
	}
}

func TestFromFlags(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.FeedParsing: true,
	})

	cfg := NewExtractionConfig(FromFlags(context.Background(), flags)...)

	if cfg.ReadabilityFallback || cfg.SiteProfiles {
		t.Errorf("unset flags should disable strategies, got %+v", cfg)
	}
	if !cfg.FeedParsing {
		t.Error("FeedParsing flag should enable feed parsing")
	}
}
