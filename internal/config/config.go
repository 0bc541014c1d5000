package config

import (
	"errors"
	"os"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var ErrFileNotFound = errors.New("config file not found")

type App struct {
	Name string `mapstructure:"name"`
}

type Logger struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Site — дефолты метаданных площадки; флаги командной строки имеют приоритет.
type Site struct {
	Company      string `mapstructure:"company"`
	LocationCode string `mapstructure:"location_code"`
}

type Output struct {
	CSVFile string `mapstructure:"csv_file"`
}

type Config struct {
	App    App    `mapstructure:"app"`
	Logger Logger `mapstructure:"logger"`
	Site   Site   `mapstructure:"site"`
	Output Output `mapstructure:"output"`
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "subnetassign")
	v.SetDefault("logger.level", "info")
}

func LoadConfig(cfgFilePath string) (*Config, error) {
	v := viper.New()

	// ENV с префиксом SNA (Subnet Assignment), __ вместо . и _ вместо - в ключах
	v.SetEnvPrefix("SNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if cfgFilePath == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		// конфиг опционален: без файла работаем на дефолтах, ENV и флагах
		_ = v.ReadInConfig()
	} else {
		if !fileExists(cfgFilePath) {
			return nil, ErrFileNotFound
		}
		v.SetConfigFile(cfgFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	decoderCfg := &mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           &cfg,
		WeaklyTypedInput: true,
	}
	dec, err := mapstructure.NewDecoder(decoderCfg)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, err
	}
	return &cfg, nil
}
