/*
Copyright 2023.

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

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RouteType is the protocol a route is served with.
// +kubebuilder:validation:Enum=http;grpc
type RouteType string

const (
	// RouteTypeHTTP is plain HTTP traffic
	RouteTypeHTTP RouteType = "http"
	// RouteTypeGRPC is gRPC traffic
	RouteTypeGRPC RouteType = "grpc"
)

// Route exposes a host and path prefix of the application on one of its service ports.
type Route struct {
	// Host is the fully qualified host name the route answers on.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:Format=hostname
	Host string `json:"host" validate:"required"`
	// Path is the path prefix, it must start with <code>/</code>.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Pattern=`^/`
	Path string `json:"path" validate:"required,startswith=/"`
	// Port is the service port traffic is forwarded to.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	Port uint16 `json:"port" validate:"required"`
	// Type is the protocol served on this route.
	// It is recorded, but currently does not change the generated Ingress.
	// +kubebuilder:validation:Required
	Type RouteType `json:"type" validate:"required,oneof=http grpc"`
}

// Ingress describes how an application is exposed outside of the cluster.
type Ingress struct {
	// Routes are turned into Ingress rules in the order given.
	// +kubebuilder:validation:Required
	Routes []Route `json:"routes" validate:"required,dive"`
	// IngressClass is the name of the IngressClass to use, cluster default when not set.
	// +optional
	IngressClass *string `json:"ingressClass,omitempty"`
}

// XIngressSpec is the part of the application spec handled by the ingress extension.
type XIngressSpec struct {
	// Ingress configuration.
	// +kubebuilder:validation:Required
	Ingress *Ingress `json:"ingress" validate:"required"`
}

//+kubebuilder:object:root=true
//+kubebuilder:resource:path=xingresses
//+kubebuilder:resource:scope=Namespaced

// XIngress is the schema the ingress extension contributes to suffiks applications.
type XIngress struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec XIngressSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// XIngressList contains a list of XIngress
type XIngressList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []XIngress `json:"items"`
}

func init() {
	SchemeBuilder.Register(&XIngress{}, &XIngressList{})
}
