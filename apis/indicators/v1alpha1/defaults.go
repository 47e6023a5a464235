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

// SetDefaults_R2IndicatorConfig fills unset fields of obj
func SetDefaults_R2IndicatorConfig(obj *R2IndicatorConfig) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if obj.Kind == "" {
		obj.Kind = R2IndicatorConfigKind
	}
	src := &obj.WeightVectors
	if src.Count == 0 && !src.UsesFile() && !src.UsesLattice() {
		src.Count = DefaultWeightVectorCount
	}
	if obj.Parallelism == 0 {
		obj.Parallelism = DefaultParallelism
	}
}
