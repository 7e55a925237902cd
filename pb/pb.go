// Package pb holds the rblock.Score contract generated from rblock.proto.
// Messages are plain protobuf, served with gRPC's default codec.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative rblock.proto

// SessionKey is the metadata key clients put their session id under.
const SessionKey = "x-rblock-session"
