/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadR2IndicatorConfig reads a YAML or JSON configuration file, applies
// defaults and validates the result. Unknown fields are rejected.
func LoadR2IndicatorConfig(path string) (*R2IndicatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return DecodeR2IndicatorConfig(data)
}

// DecodeR2IndicatorConfig decodes, defaults and validates data.
func DecodeR2IndicatorConfig(data []byte) (*R2IndicatorConfig, error) {
	cfg := &R2IndicatorConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	SetDefaults_R2IndicatorConfig(cfg)
	if errs := ValidateR2IndicatorConfig(cfg); len(errs) > 0 {
		return nil, errs.ToAggregate()
	}
	return cfg, nil
}
