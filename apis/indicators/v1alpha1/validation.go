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
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ValidateR2IndicatorConfig validates a defaulted configuration
func ValidateR2IndicatorConfig(obj *R2IndicatorConfig) field.ErrorList {
	var allErrs field.ErrorList

	if obj.APIVersion != SchemeGroupVersion.String() {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("apiVersion"), obj.APIVersion, []string{SchemeGroupVersion.String()}))
	}
	if obj.Kind != R2IndicatorConfigKind {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("kind"), obj.Kind, []string{R2IndicatorConfigKind}))
	}

	allErrs = append(allErrs, validateWeightVectorSource(&obj.WeightVectors, field.NewPath("weightVectors"))...)

	if obj.Parallelism < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("parallelism"), obj.Parallelism, "must be at least 1"))
	}
	return allErrs
}

func validateWeightVectorSource(src *WeightVectorSource, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	sources := 0
	if src.Count != 0 {
		sources++
		if src.Count < 2 {
			allErrs = append(allErrs, field.Invalid(path.Child("count"), src.Count, "must be at least 2"))
		}
	}
	if src.UsesFile() {
		sources++
	}
	if src.UsesLattice() {
		sources++
		if src.Objectives < 2 {
			allErrs = append(allErrs, field.Invalid(path.Child("objectives"), src.Objectives, "must be at least 2"))
		}
		if src.Divisions < 1 {
			allErrs = append(allErrs, field.Invalid(path.Child("divisions"), src.Divisions, "must be at least 1"))
		}
	}

	switch {
	case sources == 0:
		allErrs = append(allErrs, field.Required(path, "one of count, file or objectives/divisions must be set"))
	case sources > 1:
		allErrs = append(allErrs, field.Forbidden(path, "only one of count, file or objectives/divisions may be set"))
	}
	return allErrs
}
