// Package config 负责加载可选的 .sloc.yaml 配置文件。
// 配置只提供默认值，命令行 flag 永远优先。
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config 是配置文件支持的全部键。
type Config struct {
	// Language 是默认统计语言。
	Language string
	// Ignore 是默认排除模式列表，会拼接在 flag 提供的模式之前。
	Ignore []string
	// IncludeHidden 为 true 时默认统计隐藏路径。
	IncludeHidden bool
	// Workers 是默认并发度，0 表示交给扫描器自行决定。
	Workers int
	// Path 是实际生效的配置文件路径，未找到配置时为空。
	Path string
}

// Load 加载配置。cfgFile 非空时只读取该文件，找不到视为错误；
// 为空时依次在当前目录和用户主目录查找 .sloc.yaml，
// 找不到不是错误，返回零值配置。
func Load(fs afero.Fs, cfgFile string) (Config, error) {
	v := viper.New()
	v.SetFs(fs)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".sloc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	return Config{
		Language:      v.GetString("language"),
		Ignore:        v.GetStringSlice("ignore"),
		IncludeHidden: v.GetBool("include-hidden"),
		Workers:       v.GetInt("workers"),
		Path:          v.ConfigFileUsed(),
	}, nil
}
