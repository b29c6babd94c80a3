// Package agentv1 holds the generated gRPC bindings for the agent-graph
// sidecar. Regenerate with `go generate ./proto` after editing the
// .proto file.
package agentv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative tenderagent.proto
