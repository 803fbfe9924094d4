package config

import (
	"encoding/json"
	"os"
	"time"
)

const (
	StoreMem  = "mem"
	StoreEtcd = "etcd"
)

const (
	defaultLogLevel         = "info"
	defaultDialTimeout      = 5 * time.Second
	defaultOperationTimeout = time.Minute
)

// Tool is the configuration shared by the region tools.
type Tool struct {
	LogLevel         string        `json:"log_level" toml:"log_level" yaml:"log_level"`
	LogFile          string        `json:"log_file" toml:"log_file" yaml:"log_file"`
	Store            string        `json:"store" toml:"store" yaml:"store"`
	MemBackupPath    string        `json:"mem_backup_path" toml:"mem_backup_path" yaml:"mem_backup_path"`
	EtcdEndpoints    []string      `json:"etcd_endpoints" toml:"etcd_endpoints" yaml:"etcd_endpoints"`
	DialTimeout      time.Duration `json:"dial_timeout" toml:"dial_timeout" yaml:"dial_timeout"`
	OperationTimeout time.Duration `json:"operation_timeout" toml:"operation_timeout" yaml:"operation_timeout"`
}

// DefaultTool returns the configuration used when no config file is given.
func DefaultTool() *Tool {
	return (&Tool{}).norm()
}

func (t *Tool) norm() *Tool {
	if t.LogLevel == "" {
		t.LogLevel = defaultLogLevel
	}
	if t.Store == "" {
		t.Store = StoreMem
	}
	if t.DialTimeout <= 0 {
		t.DialTimeout = defaultDialTimeout
	}
	if t.OperationTimeout <= 0 {
		t.OperationTimeout = defaultOperationTimeout
	}
	return t
}

// LoadToolCfg loads the tool configuration from the specified file path.
//
// Parameters:
//   - cfgPath (string): The path of the configuration file.
//
// Returns:
//   - *Tool: the loaded configuration with defaults applied
//   - error: An error if any occurred during the loading process.
func LoadToolCfg(cfgPath string) (*Tool, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Tool
	if err := initConfig(file, &cfg); err != nil {
		return nil, err
	}

	return cfg.norm(), nil
}

// JSON renders the configuration for logging.
func (t *Tool) JSON() string {
	configBytes, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(configBytes)
}
