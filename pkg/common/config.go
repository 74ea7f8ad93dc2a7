// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed assassin.yaml
var BaseConfigFile []byte

type Config struct {
	// File with the names of the participants, one per line.
	Names string `yaml:"names"`

	// Shuffle the roster before building the kill ring.
	Shuffle bool  `yaml:"shuffle"`
	Seed    int64 `yaml:"seed"` // 0 means a random seed
}

// LoadConfig reads the configuration at path. A missing file is not an
// error; the zero Config is returned instead.
func LoadConfig(path string) (Config, error) {
	var config Config

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("file", path).Debug("No config file, using defaults")
		return config, nil
	}

	if err != nil {
		return config, errors.Wrap(err, "load config")
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, errors.Wrapf(err, "load config %s", path)
	}

	// Relative roster paths are relative to the config file.
	if config.Names != "" && !filepath.IsAbs(config.Names) {
		config.Names = filepath.Join(filepath.Dir(path), config.Names)
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"names":   config.Names,
		"shuffle": config.Shuffle,
		"seed":    config.Seed,
	}).Debug("Loaded config")

	return config, nil
}

// Init creates the assassin directory and a default config file, leaving
// any existing files alone.
func Init() error {
	if err := TryMkdir(Directory); err != nil {
		return errors.Wrap(err, "init")
	}

	return errors.Wrap(TryCreate(ConfigFile, BaseConfigFile), "init")
}
