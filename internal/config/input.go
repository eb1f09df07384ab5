package config

import (
	"fmt"
	"os"

	"github.com/rpgo/wealth-journey/internal/domain"
	"gopkg.in/yaml.v3"
)

// Form defaults used when a field is left blank.
const (
	DefaultStartValue       int64 = 2000000
	DefaultAnnualWithdrawal int64 = 80000
	DefaultMinYears         int64 = 10
	DefaultMostLikelyYears  int64 = 25
	DefaultMaxYears         int64 = 40
	DefaultTrialCount       int64 = 20000
	DefaultAssetMix               = domain.AssetMixSBCBlend
)

// InputParser handles parsing of simulation parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads parameters from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates parameters from raw YAML.
func (ip *InputParser) Parse(data []byte) (*domain.SimulationParameters, error) {
	var params domain.SimulationParameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if params.AssetMix == "" {
		params.AssetMix = DefaultAssetMix
	}
	mix, err := domain.ParseAssetMix(string(params.AssetMix))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	params.AssetMix = mix

	if err := ip.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &params, nil
}

// ValidateParameters validates loaded parameters
func (ip *InputParser) ValidateParameters(params *domain.SimulationParameters) error {
	if params == nil {
		return fmt.Errorf("%w: no parameters provided", domain.ErrInvalidParameters)
	}
	return params.Validate()
}

// SaveParameters writes parameters as YAML.
func (ip *InputParser) SaveParameters(filename string, params *domain.SimulationParameters) error {
	if err := ip.ValidateParameters(params); err != nil {
		return fmt.Errorf("refusing to save invalid parameters: %w", err)
	}
	data, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleParameters creates an example parameter set using the form defaults
func (ip *InputParser) CreateExampleParameters() *domain.SimulationParameters {
	params := DefaultParameters()
	return &params
}

// DefaultParameters returns the parameters a blank form submits.
func DefaultParameters() domain.SimulationParameters {
	return domain.SimulationParameters{
		AssetMix:         DefaultAssetMix,
		StartValue:       DefaultStartValue,
		AnnualWithdrawal: DefaultAnnualWithdrawal,
		MinYears:         int(DefaultMinYears),
		MostLikelyYears:  int(DefaultMostLikelyYears),
		MaxYears:         int(DefaultMaxYears),
		TrialCount:       int(DefaultTrialCount),
	}
}
