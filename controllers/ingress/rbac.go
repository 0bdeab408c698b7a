package ingress

// https://book.kubebuilder.io/reference/markers/rbac.html

//+kubebuilder:rbac:groups=networking.k8s.io,resources=ingresses,verbs=get;create;update

//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

//+kubebuilder:rbac:groups=cert-manager.io,resources=clusterissuers,verbs=get
