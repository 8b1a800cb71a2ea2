package server

import (
	"time"
)

type Config struct {
	Port                  int           `yaml:"port"`
	Host                  string        `yaml:"host"`
	AdminKey              string        `yaml:"adminKey"`
	ThrottleBuckets       int           `yaml:"throttleBuckets"`
	ThrottlePeriod        time.Duration `yaml:"throttlePeriod"`
	ThrottleMaxConcurrent int           `yaml:"throttleMaxConcurrent"`
	BatchLimit            int           `yaml:"batchLimit"`
	MaxTexts              int           `yaml:"maxTexts"`
	CertFile              string        `yaml:"certFile"`
	KeyFile               string        `yaml:"keyFile"`
	CertReloadInterval    time.Duration `yaml:"certReloadInterval"`
	ShutdownTimeout       time.Duration `yaml:"shutdownTimeout"`
}
