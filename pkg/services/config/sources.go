package config

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/services/loader"
	"gopkg.in/ini.v1"
)

// SourceRegistry reads named dataset sources from an ini file, one section
// per source:
//
//	[archive]
//	kind   = s3
//	bucket = datasets
//	key    = historical_automobile_sales.csv
type SourceRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetSource(ctx context.Context, profile string) (*loader.SourceConfig, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewSourceRegistry(path string) (SourceRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetSource(_ context.Context, profile string) (*loader.SourceConfig, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	var src loader.SourceConfig
	if err := section.MapTo(&src); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", profile, err)
	}
	if src.Kind == "" {
		return nil, fmt.Errorf("profile %s has no kind", profile)
	}
	return &src, nil
}

// ResolveSource picks the dataset source for a run: the named profile from the
// ini file when one is given, the application config's source otherwise.
func ResolveSource(ctx context.Context, cfg *Config, sourcesPath, profile string) (loader.SourceConfig, error) {
	if profile == "" {
		return cfg.Source, nil
	}

	registry, err := NewSourceRegistry(sourcesPath)
	if err != nil {
		return loader.SourceConfig{}, fmt.Errorf("failed to read sources file: %w", err)
	}
	src, err := registry.GetSource(ctx, profile)
	if err != nil {
		return loader.SourceConfig{}, err
	}
	return *src, nil
}
