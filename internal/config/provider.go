package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configFileName = "groupbuy.toml"

	// DefaultTimeout bounds a whole command, finalization waits included.
	DefaultTimeout = 5 * time.Minute
)

// goerliDefault matches the contracts the original web client shipped with,
// so the tool works against them with zero configuration.
var goerliDefault = FileNetwork{
	RPCURL:      "https://rpc.ankr.com/eth_goerli",
	ChainID:     5,
	Registry:    "0x905F6d8dAfe0475CcFab45Dfdb759CA81Bd210d9",
	Token:       "0x07865c6E87B9F70255377e024ace6630C1Eaa37F",
	ExplorerURL: "https://goerli.etherscan.io",
}

// SetupViper creates the viper instance backing global flags and env vars.
func SetupViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GROUPBUY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("timeout", DefaultTimeout)
	return v
}

// Provider resolves the RuntimeConfig from viper, groupbuy.toml, and .env.
// Wire uses this as the config provider.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	configDir, file, err := loadFile()
	if err != nil {
		return nil, err
	}

	// Secrets come from the environment; .env is a convenience, same as
	// foundry-style workflows.
	_ = godotenv.Load(filepath.Join(configDir, ".env"))

	cfg := &RuntimeConfig{
		ConfigDir:      configDir,
		PrivateKey:     os.Getenv("GROUPBUY_PRIVATE_KEY"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non-interactive"),
		JSON:           v.GetBool("json"),
		TUI:            v.GetBool("tui"),
		Timeout:        v.GetDuration("timeout"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	name := v.GetString("network")
	if name == "" {
		name = file.DefaultNetwork
	}
	if name == "" {
		name = "goerli"
	}
	network, err := resolveNetwork(file, name)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return cfg, nil
}

// loadFile finds and parses groupbuy.toml, walking up from the CWD. A missing
// file is not an error; built-in defaults apply.
func loadFile() (string, *File, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", nil, err
	}

	for d := dir; ; d = filepath.Dir(d) {
		path := filepath.Join(d, configFileName)
		if _, err := os.Stat(path); err == nil {
			var file File
			if _, err := toml.DecodeFile(path, &file); err != nil {
				return "", nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			return d, &file, nil
		}
		if filepath.Dir(d) == d {
			break
		}
	}
	return dir, &File{}, nil
}

// resolveNetwork validates one network entry into runtime form. The built-in
// goerli entry is used when the file does not override it.
func resolveNetwork(file *File, name string) (*Network, error) {
	entry, ok := file.Networks[name]
	if !ok {
		if name != "goerli" {
			return nil, fmt.Errorf("network %q not found in %s", name, configFileName)
		}
		entry = goerliDefault
	}

	if entry.RPCURL == "" {
		return nil, fmt.Errorf("network %q has no rpc_url", name)
	}
	registry, err := parseAddress(entry.Registry)
	if err != nil {
		return nil, fmt.Errorf("network %q registry: %w", name, err)
	}
	token, err := parseAddress(entry.Token)
	if err != nil {
		return nil, fmt.Errorf("network %q token: %w", name, err)
	}

	return &Network{
		Name:        name,
		RPCURL:      entry.RPCURL,
		ChainID:     entry.ChainID,
		Registry:    registry,
		Token:       token,
		ExplorerURL: strings.TrimRight(entry.ExplorerURL, "/"),
	}, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}
