// Package model contains common data structures shared between the extension handler and the ingress reconciler
package model

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// Owner identifies the custom resource on whose behalf the Ingress is managed.
type Owner struct {
	APIVersion string
	Kind       string
	Name       string
	Namespace  string
	UID        types.UID
}

// NamespacedName of the dependent Ingress, which shares the owner's name and namespace
func (o Owner) NamespacedName() types.NamespacedName {
	return types.NamespacedName{Namespace: o.Namespace, Name: o.Name}
}

// OwnerReference returns the reference put on dependent objects,
// so that they are garbage collected with the owner
func (o Owner) OwnerReference() metav1.OwnerReference {
	return metav1.OwnerReference{
		APIVersion: o.APIVersion,
		Kind:       o.Kind,
		Name:       o.Name,
		UID:        o.UID,
	}
}

// ObjectReference is used to attach events to the owner
func (o Owner) ObjectReference() *corev1.ObjectReference {
	return &corev1.ObjectReference{
		APIVersion: o.APIVersion,
		Kind:       o.Kind,
		Name:       o.Name,
		Namespace:  o.Namespace,
		UID:        o.UID,
	}
}

func (o Owner) String() string {
	return o.Kind + "/" + o.NamespacedName().String()
}
