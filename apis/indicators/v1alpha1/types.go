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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupName is the group name used in this package
const GroupName = "indicators.multiobjective.x-k8s.io"

// SchemeGroupVersion is group version used to identify these types
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

const (
	// R2IndicatorConfigKind is the kind accepted in configuration files
	R2IndicatorConfigKind = "R2IndicatorConfig"

	// DefaultWeightVectorCount is the number of uniform two-objective weight
	// vectors used when no other source is given
	DefaultWeightVectorCount = 100

	// DefaultParallelism computes the distance matrix sequentially
	DefaultParallelism = 1
)

// R2IndicatorConfig configures an R2 quality indicator: where its weight
// vectors come from, an optional reference front used for normalization and
// how many distance matrix rows may be computed concurrently.
type R2IndicatorConfig struct {
	metav1.TypeMeta `json:",inline"`

	// WeightVectors selects the scalarization directions
	WeightVectors WeightVectorSource `json:"weightVectors"`

	// ReferenceFrontFile is a whitespace separated front whose extrema are used
	// to normalize evaluated fronts. Empty disables normalization.
	ReferenceFrontFile string `json:"referenceFrontFile,omitempty"`

	// Parallelism bounds concurrent distance matrix rows
	// +kubebuilder:validation:Minimum=1
	Parallelism int `json:"parallelism,omitempty"`
}

// WeightVectorSource selects exactly one way of building weight vectors
type WeightVectorSource struct {
	// Count generates this many uniform two-objective vectors
	Count int `json:"count,omitempty"`

	// File loads one vector per line from a whitespace separated file
	File string `json:"file,omitempty"`

	// Objectives and Divisions generate a simplex lattice with the given
	// number of objectives and divisions per axis
	Objectives int `json:"objectives,omitempty"`
	Divisions  int `json:"divisions,omitempty"`
}

// UsesFile reports whether vectors are loaded from a file
func (s WeightVectorSource) UsesFile() bool {
	return s.File != ""
}

// UsesLattice reports whether vectors are generated on a simplex lattice
func (s WeightVectorSource) UsesLattice() bool {
	return s.Divisions > 0 || s.Objectives > 0
}
