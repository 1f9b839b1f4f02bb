package service

import (
	"os"

	"github.com/spf13/viper"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/config"
)

// TEDConfigurationLoaderImpl loads TED request templates from configuration
// files. Viper handles format detection, so the same schema loads from
// .regdiff.toml as well as YAML or JSON equivalents.
type TEDConfigurationLoaderImpl struct{}

// NewTEDConfigurationLoader creates a new configuration loader.
func NewTEDConfigurationLoader() *TEDConfigurationLoaderImpl {
	return &TEDConfigurationLoaderImpl{}
}

// LoadConfig loads a TED request template from a configuration file. An empty
// path searches the working directory for the default file; when neither
// names a file, the built-in defaults are returned unchanged.
func (l *TEDConfigurationLoaderImpl) LoadConfig(configPath string) (*domain.TEDRequest, error) {
	req := l.DefaultConfig()

	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return req, nil
		}
		configPath = config.FindDefaultConfigFile(cwd)
		if configPath == "" {
			return req, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(configPath, err)
		}
		return nil, domain.NewConfigError("failed to read config file: "+configPath, err)
	}

	var fileConfig config.RegdiffTomlConfig
	if err := v.Unmarshal(&fileConfig); err != nil {
		return nil, domain.NewConfigError("failed to decode config file: "+configPath, err)
	}

	fileConfig.ApplyToRequest(req)
	return req, nil
}

// DefaultConfig returns the built-in default request.
func (l *TEDConfigurationLoaderImpl) DefaultConfig() *domain.TEDRequest {
	return domain.DefaultTEDRequest()
}
