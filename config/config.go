// Package config handles loading, validating and dumping the configuration
// of the brandgen command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lumina-ai/brandgen"
	"github.com/lumina-ai/brandgen/imop"
	"github.com/spf13/viper"
)

// DefaultFile is read when no configuration file is given explicitly.
const DefaultFile = "brandgen.yaml"

// EnvPrefix prefixes the environment variables overriding file values,
// e.g. BRANDGEN_QUALITY or BRANDGEN_BACKGROUND_NODES.
const EnvPrefix = "BRANDGEN"

// Config is the top-level configuration.
type Config struct {
	OutputDir  string            `yaml:"output_dir" toml:"output_dir" mapstructure:"output_dir"`
	Quality    int               `yaml:"quality"    toml:"quality"    mapstructure:"quality"`
	Seed       int64             `yaml:"seed"       toml:"seed"       mapstructure:"seed"`
	Manifest   bool              `yaml:"manifest"   toml:"manifest"   mapstructure:"manifest"`
	Font       FontConfig        `yaml:"font"       toml:"font"       mapstructure:"font"`
	Palette    map[string]string `yaml:"palette"    toml:"palette"    mapstructure:"palette"`
	Background BackgroundConfig  `yaml:"background" toml:"background" mapstructure:"background"`
	Mission    MissionConfig     `yaml:"mission"    toml:"mission"    mapstructure:"mission"`
}

// FontConfig selects the typeface used for labels.
type FontConfig struct {
	Name     string `yaml:"name"     toml:"name"     mapstructure:"name"`
	Disabled bool   `yaml:"disabled" toml:"disabled" mapstructure:"disabled"`
}

// BackgroundConfig tunes the tech background.
type BackgroundConfig struct {
	Nodes              int     `yaml:"nodes"               toml:"nodes"               mapstructure:"nodes"`
	ConnectProbability float64 `yaml:"connect_probability" toml:"connect_probability" mapstructure:"connect_probability"`
	BlurSigma          float64 `yaml:"blur_sigma"          toml:"blur_sigma"          mapstructure:"blur_sigma"`
	ConnectorOpacity   float64 `yaml:"connector_opacity"   toml:"connector_opacity"   mapstructure:"connector_opacity"`
	Blend              string  `yaml:"blend"               toml:"blend"               mapstructure:"blend"`
}

// MissionConfig selects the output format of the mission illustration.
type MissionConfig struct {
	Format string `yaml:"format" toml:"format" mapstructure:"format"`
}

// Default returns a Config reproducing the stock artwork.
func Default() *Config {
	p := brandgen.DefaultPalette()
	bg := brandgen.DefaultBackgroundOptions()
	return &Config{
		OutputDir: "images",
		Quality:   brandgen.DefaultQuality,
		Font: FontConfig{
			Name: brandgen.DefaultFontName,
		},
		Palette: map[string]string{
			"primary":   brandgen.Hex(p.Primary),
			"secondary": brandgen.Hex(p.Secondary),
			"accent":    brandgen.Hex(p.Accent),
			"dark":      brandgen.Hex(p.Dark),
			"light":     brandgen.Hex(p.Light),
			"white":     brandgen.Hex(p.White),
			"black":     brandgen.Hex(p.Black),
		},
		Background: BackgroundConfig{
			Nodes:              bg.Nodes,
			ConnectProbability: bg.ConnectProbability,
			BlurSigma:          bg.BlurSigma,
			ConnectorOpacity:   bg.ConnectorOpacity,
			Blend:              bg.Blend.String(),
		},
		Mission: MissionConfig{
			Format: brandgen.PNG.Ext(),
		},
	}
}

// defaults registers every key of Default with v, so that environment
// variables are picked up for keys absent from the file.
func defaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("quality", d.Quality)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("font.name", d.Font.Name)
	v.SetDefault("font.disabled", d.Font.Disabled)
	for name, hex := range d.Palette {
		v.SetDefault("palette."+name, hex)
	}
	v.SetDefault("background.nodes", d.Background.Nodes)
	v.SetDefault("background.connect_probability", d.Background.ConnectProbability)
	v.SetDefault("background.blur_sigma", d.Background.BlurSigma)
	v.SetDefault("background.connector_opacity", d.Background.ConnectorOpacity)
	v.SetDefault("background.blend", d.Background.Blend)
	v.SetDefault("mission.format", d.Mission.Format)
}

// Load reads the configuration file at configPath (YAML or TOML, chosen by
// extension) over the defaults, then applies BRANDGEN_* environment
// variables. An empty configPath reads DefaultFile when it exists and
// falls back to the defaults otherwise.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configPath = DefaultFile
		}
	}
	if configPath != "" {
		switch strings.ToLower(strings.TrimPrefix(filepath.Ext(configPath), ".")) {
		case "toml":
			v.SetConfigType("toml")
		default:
			v.SetConfigType("yaml")
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the value ranges and the names of formats, blend modes
// and palette colors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("config: output_dir is required")
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("config: quality must be between 1 and 100 (got %d)", c.Quality)
	}
	if c.Background.Nodes < 0 {
		return fmt.Errorf("config: background.nodes must not be negative (got %d)", c.Background.Nodes)
	}
	if p := c.Background.ConnectProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: background.connect_probability must be between 0 and 1 (got %g)", p)
	}
	if c.Background.BlurSigma < 0 {
		return fmt.Errorf("config: background.blur_sigma must not be negative (got %g)", c.Background.BlurSigma)
	}
	if o := c.Background.ConnectorOpacity; o < 0 || o > 1 {
		return fmt.Errorf("config: background.connector_opacity must be between 0 and 1 (got %g)", o)
	}
	if _, err := imop.ParseBlend(c.Background.Blend); err != nil {
		return fmt.Errorf("config: background.blend: %w", err)
	}
	if _, err := brandgen.ParseFormat(c.Mission.Format); err != nil {
		return fmt.Errorf("config: mission.format: %w", err)
	}
	if _, err := brandgen.DefaultPalette().WithOverrides(c.Palette); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options converts the configuration into generator options. The typeface
// is resolved here; a font that cannot be found only disables labels.
func (c *Config) Options(logger *log.Logger) (brandgen.Options, error) {
	opts := brandgen.DefaultOptions()
	opts.Seed = c.Seed
	opts.Logger = logger

	palette, err := opts.Palette.WithOverrides(c.Palette)
	if err != nil {
		return opts, err
	}
	opts.Palette = palette

	blend, err := imop.ParseBlend(c.Background.Blend)
	if err != nil {
		return opts, err
	}
	opts.Background = brandgen.BackgroundOptions{
		Nodes:              c.Background.Nodes,
		ConnectProbability: c.Background.ConnectProbability,
		BlurSigma:          c.Background.BlurSigma,
		ConnectorOpacity:   c.Background.ConnectorOpacity,
		Blend:              blend,
	}

	if opts.MissionFormat, err = brandgen.ParseFormat(c.Mission.Format); err != nil {
		return opts, err
	}

	if !c.Font.Disabled {
		tf, err := brandgen.LoadTypeface(c.Font.Name)
		if err != nil {
			if logger != nil {
				logger.Debug("labels disabled", "err", err)
			}
		} else {
			opts.Typeface = tf
			if logger != nil {
				logger.Debug("font loaded", "path", tf.Path)
			}
		}
	}
	return opts, nil
}

// Write dumps the configuration as TOML.
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
