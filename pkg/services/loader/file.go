package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const KindFile = "file"

type fileLoader struct {
	path string
}

func NewFileLoader(_ context.Context, cfg SourceConfig) (Loader, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file source requires a path")
	}
	return &fileLoader{path: cfg.Path}, nil
}

func (l *fileLoader) Load(ctx context.Context) ([]domain.SalesRecord, LoadReport, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	defer f.Close()

	return DecodeCSV(ctx, f)
}
