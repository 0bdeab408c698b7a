// Package extension contains the gRPC contract between suffiks and its extensions
package extension

//go:generate protoc --proto_path=../../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative extension.proto
