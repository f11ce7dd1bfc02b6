package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pricenorm/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Output OutputConfig `toml:"output"`
	Markup MarkupConfig `toml:"markup"`
	Types  TypesConfig  `toml:"types"`
}

// ServerConfig HTTP 模式配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// OutputConfig 输出文件配置
type OutputConfig struct {
	DefaultPath  string    `toml:"default_path"`
	ColumnWidths []float64 `toml:"column_widths"`
}

// MarkupConfig 加价区间配置；为空时使用内置区间表
type MarkupConfig struct {
	Bands []BandConfig `toml:"bands"`
}

// BandConfig 单个加价区间；Max 为 0 表示无上限
type BandConfig struct {
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
	Add   float64 `toml:"add"`
	Label string  `toml:"label"`
}

// TypesConfig 箱型映射配置；Mapping 为空时使用内置映射表
type TypesConfig struct {
	Fallback string            `toml:"fallback"`
	Mapping  map[string]string `toml:"mapping"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20412,
			DevMode: false,
		},
		Output: OutputConfig{
			DefaultPath: "normalized-prices.xlsx",
		},
		Types: TypesConfig{
			Fallback: model.FallbackBoxType,
		},
	}
}

// Bands 返回生效的加价区间表；配置了覆盖时先做完整性校验
func (c *AppConfig) Bands() ([]model.PriceBand, error) {
	if len(c.Markup.Bands) == 0 {
		return model.DefaultBands(), nil
	}

	bands := make([]model.PriceBand, 0, len(c.Markup.Bands))
	for _, b := range c.Markup.Bands {
		max := b.Max
		if max == 0 {
			max = math.Inf(1)
		}
		label := b.Label
		if label == "" {
			if math.IsInf(max, 1) {
				label = fmt.Sprintf("%g+", b.Min)
			} else {
				label = fmt.Sprintf("%g-%g", b.Min, max)
			}
		}
		bands = append(bands, model.PriceBand{Min: b.Min, Max: max, Add: b.Add, Label: label})
	}

	if err := model.ValidateBands(bands); err != nil {
		return nil, fmt.Errorf("invalid markup bands: %w", err)
	}
	return bands, nil
}

// BoxTypes 返回生效的箱型映射表
func (c *AppConfig) BoxTypes() model.BoxTypeTable {
	if len(c.Types.Mapping) == 0 {
		return model.DefaultBoxTypes()
	}
	table := make(model.BoxTypeTable, len(c.Types.Mapping))
	for k, v := range c.Types.Mapping {
		table[k] = v
	}
	return table
}

// FallbackBoxType 返回箱型缺失时使用的标签
func (c *AppConfig) FallbackBoxType() string {
	if c.Types.Fallback == "" {
		return model.FallbackBoxType
	}
	return c.Types.Fallback
}

// ColumnWidths 返回输出列宽；未配置或配置不完整时用默认值
func (c *AppConfig) ColumnWidths() [4]float64 {
	var widths [4]float64
	if len(c.Output.ColumnWidths) != len(widths) {
		return widths // 零值交由 Writer 替换为默认列宽
	}
	copy(widths[:], c.Output.ColumnWidths)
	return widths
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 加载配置。优先使用 PRICENORM_CONFIG 指定的路径，
// 否则读取可执行文件同目录下的 config.toml；文件不存在时使用默认配置。
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	configPath := os.Getenv("PRICENORM_CONFIG")
	if configPath == "" {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		configPath = filepath.Join(exeDir, "config.toml")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig 保存配置到可执行文件同目录下的 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
