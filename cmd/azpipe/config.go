package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives every pipeline stage. Paths are relative to the working
// directory unless absolute.
type Config struct {
	Corpus struct {
		Path              string  `yaml:"path"`
		MinChars          int     `yaml:"min_chars"`
		APIURL            string  `yaml:"api_url"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Retries           int     `yaml:"retries"`
	} `yaml:"corpus"`

	Vocab struct {
		Path      string `yaml:"path"`
		Lowercase bool   `yaml:"lowercase"`
		MinFreq   int    `yaml:"min_freq"`
		MinLen    int    `yaml:"min_len"`
		AlphaOnly bool   `yaml:"alpha_only"`
	} `yaml:"vocab"`

	Stats struct {
		ZipfPath  string `yaml:"zipf_path"`
		HeapsPath string `yaml:"heaps_path"`
		Stride    int    `yaml:"stride"`
	} `yaml:"stats"`

	BPE struct {
		RulesPath   string `yaml:"rules_path"`
		NumMerges   int    `yaml:"num_merges"`
		MinWordFreq int    `yaml:"min_word_freq"`
	} `yaml:"bpe"`

	Confusion struct {
		MatrixPath   string  `yaml:"matrix_path"`
		Smoothing    float64 `yaml:"smoothing"`
		Seed         int64   `yaml:"seed"`
		PairsPerWord int     `yaml:"pairs_per_word"`
	} `yaml:"confusion"`

	Spell struct {
		TopK       int     `yaml:"top_k"`
		MaxLenDiff int     `yaml:"max_len_diff"`
		MaxCost    float64 `yaml:"max_cost"`
	} `yaml:"spell"`

	Server struct {
		Addr      string `yaml:"addr"`
		RedisAddr string `yaml:"redis_addr"`
		CacheSize int    `yaml:"cache_size"`
	} `yaml:"server"`
}

func defaultConfig() Config {
	var c Config
	c.Corpus.Path = "data/raw/corpus.csv"
	c.Corpus.MinChars = 200
	c.Corpus.RequestsPerSecond = 2
	c.Corpus.Retries = 5
	c.Vocab.Path = "data/processed/vocab.txt"
	c.Vocab.Lowercase = true
	c.Vocab.MinFreq = 1
	c.Stats.ZipfPath = "outputs/stats/zipf.csv"
	c.Stats.HeapsPath = "outputs/stats/heaps.csv"
	c.Stats.Stride = 1000
	c.BPE.RulesPath = "data/processed/bpe_rules.txt"
	c.BPE.NumMerges = 1000
	c.Confusion.MatrixPath = "data/processed/confusion.json"
	c.Confusion.Seed = 42
	c.Confusion.PairsPerWord = 3
	c.Spell.TopK = 5
	c.Server.Addr = ":8080"
	c.Server.CacheSize = 1024
	return c
}

// loadConfig overlays the YAML file at path onto the defaults. A missing
// file is fine when the path is the unchanged default.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
