// internal/cfg/cfg.go

// Package cfg reads the optional YAML defaults file for the classifier.
// Values from the file fill in flags the user did not set explicitly;
// explicit flags always win.
package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML layout:
//
//	training:
//	  lambda: 0.01
//	  ensembleSize: 11
//	  epochs: 10
//	  learningRate: 0.1
//	  seed: 42
//	threads: 4
type File struct {
	Training struct {
		Lambda       float64 `yaml:"lambda"`
		EnsembleSize int     `yaml:"ensembleSize"`
		Epochs       int     `yaml:"epochs"`
		LearningRate float64 `yaml:"learningRate"`
		Seed         int64   `yaml:"seed"`
	} `yaml:"training"`
	Threads int `yaml:"threads"`
}

// Load parses the defaults file at path.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate(&f); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

func validate(f *File) error {
	if f.Training.Lambda < 0 {
		return fmt.Errorf("training.lambda must be >= 0, got %g", f.Training.Lambda)
	}
	if f.Training.EnsembleSize < 0 {
		return fmt.Errorf("training.ensembleSize must be >= 0, got %d", f.Training.EnsembleSize)
	}
	if f.Training.Epochs < 0 {
		return fmt.Errorf("training.epochs must be >= 0, got %d", f.Training.Epochs)
	}
	if f.Training.LearningRate < 0 {
		return fmt.Errorf("training.learningRate must be >= 0, got %g", f.Training.LearningRate)
	}
	if f.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", f.Threads)
	}
	return nil
}
