// Package ideav1 holds the generated ideaboard.v1 IdeaService messages and
// gRPC bindings. Edit idea_service.proto and regenerate from the repo root.
package ideav1

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative api/proto/v1/idea_service.proto
