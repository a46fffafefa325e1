package modes

import (
	"caregate-service/internal/app/config"
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// selector routes each dataset to the live store or the fixture source
// according to deployment settings. Unconfigured datasets default to live.
type selector struct {
	modes         map[string]string
	liveSource    contracts.DataSource
	fixtureSource contracts.DataSource
	Log           *zap.Logger
}

func NewSourceResolver(settings *config.GatewaySettings, liveSource, fixtureSource contracts.DataSource, logger *zap.Logger) contracts.SourceResolver {
	modes := make(map[string]string, len(constvars.DatasetResourceTypes))
	for datasetKey := range constvars.DatasetResourceTypes {
		mode := settings.DatasetModes[datasetKey]
		if mode != constvars.DataSourceModeFixture {
			mode = constvars.DataSourceModeLive
		}
		modes[datasetKey] = mode
		logger.Info("dataset mode resolved",
			zap.String(constvars.LoggingDatasetKey, datasetKey),
			zap.String(constvars.LoggingModeKey, mode),
		)
	}
	return &selector{
		modes:         modes,
		liveSource:    liveSource,
		fixtureSource: fixtureSource,
		Log:           logger,
	}
}

// Resolve returns the configured mode for a dataset key.
func (s *selector) Resolve(datasetKey string) (string, error) {
	mode, ok := s.modes[datasetKey]
	if !ok {
		return "", exceptions.ErrUnknownDataset(datasetKey)
	}
	return mode, nil
}

// Source returns the data source behind a dataset key. Both reads and
// writes of a dataset go through the same source, so a fixture dataset can
// never leak mutations into the live store.
func (s *selector) Source(datasetKey string) (contracts.DataSource, error) {
	mode, err := s.Resolve(datasetKey)
	if err != nil {
		return nil, err
	}
	if mode == constvars.DataSourceModeFixture {
		return s.fixtureSource, nil
	}
	return s.liveSource, nil
}
