package config

import (
	"errors"
	"fmt"
	"os"

	"CRTRaster/pkg/device"
	"CRTRaster/pkg/raster"

	"gopkg.in/yaml.v3"
)

var ErrUnknownDevice = errors.New("config: unknown device type")

type Config struct {
	Device struct {
		Type       string  `yaml:"type"` // loopback, asio or oto
		DeviceName string  `yaml:"device_name"`
		SampleRate float64 `yaml:"sample_rate"`
		BufferSize int     `yaml:"buffer_size"`
		OutChannel int     `yaml:"out_channel"`
		Noise      bool    `yaml:"noise"` // loopback only: start from white noise
	} `yaml:"device"`

	Raster struct {
		SampleRate     float64 `yaml:"sample_rate"`
		SamplesPerLine int     `yaml:"samples_per_line"`
		SyncLen        int     `yaml:"sync_len"`
		BlankLen       int     `yaml:"blank_len"`
		LinesPerFrame  int     `yaml:"lines_per_frame"`
		Pattern        string  `yaml:"pattern"`
		ActiveAmp      float64 `yaml:"active_amp"`
		SyncLevel      float64 `yaml:"sync_level"`
		BlankLevel     float64 `yaml:"blank_level"`
		LFM            struct {
			F0 float64 `yaml:"f0"`
			F1 float64 `yaml:"f1"`
		} `yaml:"lfm"`
		Gamma float64 `yaml:"gamma"`
	} `yaml:"raster"`
}

// Default mirrors raster.DefaultConfig played on a loopback device.
func Default() *Config {
	var config Config
	config.Device.Type = "loopback"
	config.Device.SampleRate = 48000
	config.Device.BufferSize = device.BufferSize

	d := raster.DefaultConfig()
	config.Raster.SampleRate = d.SampleRate
	config.Raster.SamplesPerLine = d.SamplesPerLine
	config.Raster.SyncLen = d.SyncLen
	config.Raster.BlankLen = d.BlankLen
	config.Raster.LinesPerFrame = d.LinesPerFrame
	config.Raster.Pattern = d.Pattern.String()
	config.Raster.ActiveAmp = d.ActiveAmp
	config.Raster.SyncLevel = d.SyncLevel
	config.Raster.BlankLevel = d.BlankLevel
	config.Raster.LFM.F0 = d.ChirpStartFreq
	config.Raster.LFM.F1 = d.ChirpEndFreq
	config.Raster.Gamma = d.Gamma
	return &config
}

// LoadConfig reads a YAML file, keys missing from it keep their Default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return config, nil
}

func (c *Config) RasterConfig() raster.Config {
	return raster.Config{
		SampleRate:     c.Raster.SampleRate,
		SamplesPerLine: c.Raster.SamplesPerLine,
		SyncLen:        c.Raster.SyncLen,
		BlankLen:       c.Raster.BlankLen,
		LinesPerFrame:  c.Raster.LinesPerFrame,
		Pattern:        raster.ParsePattern(c.Raster.Pattern),
		ActiveAmp:      c.Raster.ActiveAmp,
		SyncLevel:      c.Raster.SyncLevel,
		BlankLevel:     c.Raster.BlankLevel,
		ChirpStartFreq: c.Raster.LFM.F0,
		ChirpEndFreq:   c.Raster.LFM.F1,
		Gamma:          c.Raster.Gamma,
	}
}

func CreateGenerator(config *Config) (*raster.Generator, error) {
	return raster.New(config.RasterConfig())
}

func CreateDevice(config *Config) (device.Device, error) {
	switch config.Device.Type {
	case "", "loopback":
		return &device.Loopback{
			SampleRate: config.Device.SampleRate,
			BufferSize: config.Device.BufferSize,
			Noise:      config.Device.Noise,
		}, nil
	case "asio":
		return &device.ASIOMono{
			DeviceName: config.Device.DeviceName,
			SampleRate: config.Device.SampleRate,
			OutChannel: config.Device.OutChannel,
		}, nil
	case "oto":
		return &device.Oto{
			SampleRate: int(config.Device.SampleRate),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDevice, config.Device.Type)
	}
}
