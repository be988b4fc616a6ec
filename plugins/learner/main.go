// Reference learner plugin. Appends each completed session as a JSON line to
// a log file so its effect is observable without a real model behind it.
package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	learnerrpc "tempo/internal/modules/timer/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct {
	logPath string
}

func (s *server) GetMetadata(_ context.Context, _ *learnerrpc.Empty) (*learnerrpc.Metadata, error) {
	return &learnerrpc.Metadata{
		Name:    "reference-learner",
		Version: "1.0.0",
	}, nil
}

func (s *server) LearnFromSession(_ context.Context, in *learnerrpc.SessionSnapshot) (*learnerrpc.LearnResponse, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(s.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	if _, err := f.Write(append(raw, '\n')); err != nil {
		return nil, err
	}
	return &learnerrpc.LearnResponse{Accepted: true}, nil
}

func main() {
	logPath := os.Getenv("TEMPO_LEARNER_LOG")
	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		logPath = filepath.Join(home, ".tempo", "learner.jsonl")
	}
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: learnerrpc.HandshakeConfig,
		Plugins:         learnerrpc.PluginMap(&server{logPath: logPath}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
