package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	timerrpc "tempo/internal/modules/timer/adapter/out/rpc"
	"tempo/internal/modules/timer/domain"
	timerout "tempo/internal/modules/timer/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	pluginStartTimeout = 3 * time.Second
	pluginCallTimeout  = 5 * time.Second
)

// PluginLearner forwards completed sessions to an out-of-process learner
// plugin over the go-plugin gRPC transport. Each call spawns and reaps the
// plugin process; the caller already treats failures as best effort.
type PluginLearner struct {
	binary string
}

func NewPluginLearner(binary string) timerout.Learner {
	return &PluginLearner{binary: binary}
}

func (l *PluginLearner) LearnFromSession(ctx context.Context, session domain.Session) error {
	client, closeFn, err := l.connect()
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, pluginCallTimeout)
	defer cancel()
	response, err := client.LearnFromSession(callCtx, &timerrpc.SessionSnapshot{
		ID:                session.ID,
		UserID:            session.UserID,
		TaskID:            session.TaskID,
		Type:              string(session.Type),
		StartedAt:         session.StartedAt.Format(timeLayout),
		EndedAt:           session.EndedAt.Format(timeLayout),
		TotalPauseSeconds: session.TotalPauseSeconds,
		PauseCount:        session.PauseCount,
		DurationMin:       session.DurationMin,
		WasCompleted:      session.WasCompleted,
		Notes:             session.Notes,
	})
	if err != nil {
		return fmt.Errorf("learn from session: %w", err)
	}
	if !response.Accepted {
		return fmt.Errorf("learner rejected session %s", session.ID)
	}
	return nil
}

func (l *PluginLearner) connect() (timerrpc.LearnerClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  timerrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          timerrpc.PluginMap(nil),
		Cmd:              exec.Command(l.binary),
		Managed:          true,
		StartTimeout:     pluginStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start learner plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(timerrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense learner plugin: %w", err)
	}
	typed, ok := raw.(timerrpc.LearnerClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("learner rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
