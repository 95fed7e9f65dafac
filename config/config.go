// Package config loads run settings from flags, PLUME_ environment variables,
// an optional .env file and an optional config file, in that precedence.
package config

import (
	"path/filepath"
	"strings"

	"github.com/wgdzlh/plumelib/utils"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	ENV_PREFIX       = "PLUME"
	DEFAULT_ENV_FILE = ".env"
	CATALOG_NAME     = "combined_plume_metadata.json"

	COMPRESSOR_SHELL = "shell"
	COMPRESSOR_GDAL  = "gdal"
)

const (
	KEY_SOURCE_DIR       = "source_dir"
	KEY_DEST_DIR         = "dest_dir"
	KEY_MANUAL_DEL_DIR   = "manual_del_dir"
	KEY_CATALOG          = "catalog"
	KEY_SOFTWARE_VERSION = "software_version"
	KEY_DATA_VERSION     = "data_version"
	KEY_COG_SCRIPT       = "cog_script"
	KEY_COMPRESSOR       = "compressor"
	KEY_WORKERS          = "workers"
	KEY_LOG_LEVEL        = "log_level"
	KEY_LOG_DEV          = "log_dev"
)

var (
	ErrMissingSetting    = errors.New("missing setting")
	ErrUnknownCompressor = errors.New("unknown compressor")
	ErrBadWorkers        = errors.New("workers must be positive")
)

type Config struct {
	SourceDir       string `mapstructure:"source_dir"`
	DestDir         string `mapstructure:"dest_dir"`
	ManualDelDir    string `mapstructure:"manual_del_dir"`
	Catalog         string `mapstructure:"catalog"` // 为空时取 <manual_del_dir>/combined_plume_metadata.json
	SoftwareVersion string `mapstructure:"software_version"`
	DataVersion     string `mapstructure:"data_version"`
	CogScript       string `mapstructure:"cog_script"`
	Compressor      string `mapstructure:"compressor"`
	Workers         int    `mapstructure:"workers"`
	LogLevel        string `mapstructure:"log_level"`
	LogDev          bool   `mapstructure:"log_dev"` // 控制台格式日志
}

// 带默认值及环境变量绑定的viper实例，命令行参数由调用方绑定
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KEY_SOURCE_DIR, "methane_20230813")
	v.SetDefault(KEY_DEST_DIR, "visions_delivery")
	v.SetDefault(KEY_MANUAL_DEL_DIR, "")
	v.SetDefault(KEY_CATALOG, "")
	v.SetDefault(KEY_SOFTWARE_VERSION, "")
	v.SetDefault(KEY_DATA_VERSION, "")
	v.SetDefault(KEY_COG_SCRIPT, "")
	v.SetDefault(KEY_COMPRESSOR, COMPRESSOR_SHELL)
	v.SetDefault(KEY_WORKERS, 4)
	v.SetDefault(KEY_LOG_LEVEL, "info")
	v.SetDefault(KEY_LOG_DEV, false)
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// 读取配置：envFile为空时尝试当前目录下的.env，file为空时不读配置文件
func Load(v *viper.Viper, file, envFile string) (c Config, err error) {
	if envFile != "" {
		if err = godotenv.Load(envFile); err != nil {
			err = errors.Wrapf(err, "load env file %s", envFile)
			return
		}
	} else if utils.FileExists(DEFAULT_ENV_FILE) {
		if err = godotenv.Load(DEFAULT_ENV_FILE); err != nil {
			err = errors.Wrapf(err, "load env file %s", DEFAULT_ENV_FILE)
			return
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err = v.ReadInConfig(); err != nil {
			err = errors.Wrapf(err, "read config %s", file)
			return
		}
	}
	if err = v.Unmarshal(&c); err != nil {
		err = errors.Wrap(err, "decode config")
		return
	}
	if c.Catalog == "" && c.ManualDelDir != "" {
		c.Catalog = filepath.Join(c.ManualDelDir, CATALOG_NAME)
	}
	err = c.Validate()
	return
}

func (c Config) Validate() error {
	for _, s := range []struct{ key, val string }{
		{KEY_SOURCE_DIR, c.SourceDir},
		{KEY_DEST_DIR, c.DestDir},
		{KEY_MANUAL_DEL_DIR, c.ManualDelDir},
	} {
		if s.val == "" {
			return errors.Wrap(ErrMissingSetting, s.key)
		}
	}
	switch c.Compressor {
	case COMPRESSOR_SHELL:
		if c.CogScript == "" {
			return errors.Wrap(ErrMissingSetting, KEY_COG_SCRIPT)
		}
	case COMPRESSOR_GDAL:
	default:
		return errors.Wrapf(ErrUnknownCompressor, "%q", c.Compressor)
	}
	if c.Workers <= 0 {
		return errors.Wrapf(ErrBadWorkers, "%d", c.Workers)
	}
	return nil
}
