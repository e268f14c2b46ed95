package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load 读取 YAML 配置并应用默认值与校验。
// 敏感字段（API key/secret、Telegram token）支持环境变量覆盖。
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path cannot be empty")
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	bindSecretEnvs(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "toml"
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := restoreWeightKeys(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	setKeys := make(keySet)
	collectSettingsKeys(v.AllSettings(), setKeys)
	cfg.applyDefaults(setKeys)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindSecretEnvs 将密钥类字段绑定到环境变量（环境变量优先于文件内容）。
func bindSecretEnvs(v *viper.Viper) {
	_ = v.BindEnv("bybit.api_key", "BYBIT_API_KEY")
	_ = v.BindEnv("bybit.api_secret", "BYBIT_SECRET")
	_ = v.BindEnv("notify.telegram.bot_token", "TELEGRAM_TOKEN")
	_ = v.BindEnv("notify.telegram.chat_id", "TELEGRAM_CHAT_ID")
}

// restoreWeightKeys 修复 viper 递归小写化 map key 的问题：
// 权重表的 key 是 "Long 1" 这样的大小写敏感标识，经 viper 解码后会变成
// "long 1"，与告警解析出的标识永远对不上。这里用保留大小写的 YAML
// 解析重新读取 trading.weights，覆盖解码结果。
func restoreWeightKeys(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc struct {
		Trading struct {
			Weights map[string]float64 `yaml:"weights"`
		} `yaml:"trading"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if len(doc.Trading.Weights) > 0 {
		cfg.Trading.Weights = doc.Trading.Weights
	}
	return nil
}

func collectSettingsKeys(settings map[string]any, dest keySet) {
	if dest == nil || len(settings) == 0 {
		return
	}
	flattenConfigKeys("", settings, dest)
}

func flattenConfigKeys(prefix string, node any, dest keySet) {
	switch val := node.(type) {
	case map[string]any:
		for k, v := range val {
			next := strings.ToLower(strings.TrimSpace(k))
			if next == "" {
				continue
			}
			if prefix != "" {
				next = prefix + "." + next
			}
			flattenConfigKeys(next, v, dest)
		}
	case map[interface{}]interface{}:
		for k, v := range val {
			keyStr, ok := k.(string)
			if !ok {
				continue
			}
			next := strings.ToLower(strings.TrimSpace(keyStr))
			if next == "" {
				continue
			}
			if prefix != "" {
				next = prefix + "." + next
			}
			flattenConfigKeys(next, v, dest)
		}
	case []any:
		if prefix != "" {
			dest.mark(prefix)
		}
		for _, item := range val {
			flattenConfigKeys(prefix, item, dest)
		}
	default:
		if prefix != "" {
			dest.mark(prefix)
		}
	}
}
