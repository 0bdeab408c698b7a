package mock_test

//go:generate go run github.com/golang/mock/mockgen -package mock_test -destination reconciler.go github.com/suffiks/ingress-extension/controllers/ingress Reconciler
//go:generate go run github.com/golang/mock/mockgen -package mock_test -destination reporter.go github.com/suffiks/ingress-extension/controllers/reporter IngressStatusReporter
