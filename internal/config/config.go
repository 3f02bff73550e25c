package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		Addr        string   `yaml:"addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"http"`

	Agents struct {
		Total     int `yaml:"total"`
		Available int `yaml:"available"`
	} `yaml:"agents"`

	Monitor struct {
		TickSeconds        int     `yaml:"tick_seconds"`
		ArrivalSeconds     int     `yaml:"arrival_seconds"`
		ArrivalProbability float64 `yaml:"arrival_probability"`
		MinLifespanSeconds int     `yaml:"min_lifespan_seconds"`
		MaxLifespanSeconds int     `yaml:"max_lifespan_seconds"`
	} `yaml:"monitor"`

	Archive struct {
		DSN       string `yaml:"dsn"`
		MemoryCap int    `yaml:"memory_cap"`
	} `yaml:"archive"`
}

func Default() *Config {
	c := &Config{}
	c.HTTP.Addr = ":8080"
	c.HTTP.CORSOrigins = []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}
	c.Agents.Total = 5
	c.Agents.Available = 5
	c.Monitor.TickSeconds = 1
	c.Monitor.ArrivalSeconds = 10
	c.Monitor.ArrivalProbability = 0.2
	c.Monitor.MinLifespanSeconds = 10
	c.Monitor.MaxLifespanSeconds = 40
	c.Archive.MemoryCap = 500
	return c
}

// Load reads path over the defaults. A missing file is not an error:
// the server runs fine on defaults alone.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}

	c.sanitize()
	return c, nil
}

func (c *Config) sanitize() {
	if c.Monitor.TickSeconds < 1 {
		c.Monitor.TickSeconds = 1
	}
	if c.Monitor.ArrivalSeconds < 1 {
		c.Monitor.ArrivalSeconds = 1
	}
	if c.Monitor.ArrivalProbability < 0 {
		c.Monitor.ArrivalProbability = 0
	}
	if c.Monitor.ArrivalProbability > 1 {
		c.Monitor.ArrivalProbability = 1
	}
	if c.Monitor.MinLifespanSeconds < 1 {
		c.Monitor.MinLifespanSeconds = 1
	}
	if c.Monitor.MaxLifespanSeconds < c.Monitor.MinLifespanSeconds {
		c.Monitor.MaxLifespanSeconds = c.Monitor.MinLifespanSeconds
	}
	if c.Agents.Total < 0 {
		c.Agents.Total = 0
	}
	if c.Agents.Available < 0 {
		c.Agents.Available = 0
	}
	if c.Agents.Available > c.Agents.Total {
		c.Agents.Available = c.Agents.Total
	}
	if c.Archive.MemoryCap < 1 {
		c.Archive.MemoryCap = 500
	}
}
