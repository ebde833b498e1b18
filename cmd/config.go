package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tuannh982/hashdict/dict"
	"github.com/tuannh982/hashdict/dict/hashing"
)

const envPrefix = "hashdict"

type hashConfig struct {
	Capacity int     `mapstructure:"capacity"`
	MaxLoad  float64 `mapstructure:"max-load"`
	Hash     string  `mapstructure:"hash"`
	Modulus  int     `mapstructure:"modulus"`
	Bin      int     `mapstructure:"bin"`
	Keys     int     `mapstructure:"keys"`
	GrowStep int     `mapstructure:"grow-step"`
	Rehash   bool    `mapstructure:"rehash"`
}

func hashFlags(cmd *cobra.Command) {
	cmd.Flags().Int("capacity", dict.DefaultCapacity, "Initial bucket or slot count")
	cmd.Flags().Float64("max-load", dict.DefaultMaxLoadFactor, "Load factor that triggers growth")
	cmd.Flags().String("hash", "identity", "Hash function: identity, modulo, constant or xxh3")
	cmd.Flags().Int("modulus", 10, "Modulus of the modulo hash")
	cmd.Flags().Int("bin", 5, "Bin of the constant hash")
	cmd.Flags().Int("keys", 100, "Number of keys to insert")
	cmd.Flags().Int("grow-step", dict.DefaultGrowStep, "Buckets or slots appended per growth, 0 disables growth")
	cmd.Flags().Bool("rehash", false, "Redistribute entries when growing")
}

// loadConfig resolves cmd's flags, HASHDICT_* environment variables and the
// optional config file into out. Flags set on the command line win.
func loadConfig(cmd *cobra.Command, configFile string, out any) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}
	if err := v.Unmarshal(out); err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	return nil
}

func (c hashConfig) hashFunc() (hashing.HashFunc[int], error) {
	switch c.Hash {
	case "identity":
		return hashing.Identity[int](), nil
	case "modulo":
		if c.Modulus <= 0 {
			return nil, errors.Errorf("modulus must be positive, got %d", c.Modulus)
		}
		return hashing.Modulo(c.Modulus), nil
	case "constant":
		return hashing.Constant[int](c.Bin), nil
	case "xxh3":
		h := hashing.XXH3[string]()
		return func(k int) int {
			return h(strconv.Itoa(k))
		}, nil
	default:
		return nil, errors.Errorf("unknown hash function %q", c.Hash)
	}
}

func (c hashConfig) options() ([]dict.Option[int], error) {
	if c.Capacity < 1 {
		return nil, errors.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if !(c.MaxLoad > 0 && c.MaxLoad <= 1) {
		return nil, errors.Errorf("max-load must be in (0, 1], got %v", c.MaxLoad)
	}
	if c.GrowStep < 0 {
		return nil, errors.Errorf("grow-step must not be negative, got %d", c.GrowStep)
	}
	if c.Keys < 0 {
		return nil, errors.Errorf("keys must not be negative, got %d", c.Keys)
	}
	h, err := c.hashFunc()
	if err != nil {
		return nil, err
	}
	policy := dict.GrowAppend
	if c.Rehash {
		policy = dict.GrowRehash
	}
	return []dict.Option[int]{
		dict.WithCapacity[int](c.Capacity),
		dict.WithMaxLoadFactor[int](c.MaxLoad),
		dict.WithHashFunc(h),
		dict.WithGrowStep[int](c.GrowStep),
		dict.WithGrowPolicy[int](policy),
	}, nil
}
