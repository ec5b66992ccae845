package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

type grpcServiceBinder struct {
	target      string
	callTimeout time.Duration
	dialOptions []grpc.DialOption

	logger *logger.Logger
}

// NewGRPCServiceBinder constructs a [ServiceBinder] for the proxy service at
// cfg.Address. The channel is plaintext: the service is expected on loopback
// or a unix socket. Extra dial options are appended after the defaults, which
// lets tests plug in an in-memory dialer.
func NewGRPCServiceBinder(cfg config.ClientService, logger *logger.Logger, opts ...grpc.DialOption) (ServiceBinder, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("empty service address")
	}

	dialOptions := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	}, opts...)

	return &grpcServiceBinder{
		target:      cfg.Address,
		callTimeout: cfg.CallTimeout,
		dialOptions: dialOptions,
		logger:      logger,
	}, nil
}

// Bind implements [ServiceBinder]. grpc.NewClient does not dial, so Bind
// never blocks; a goroutine pushes the channel out of IDLE and follows its
// connectivity state until it is READY, then calls ready once.
func (b *grpcServiceBinder) Bind(ready func(ProxyService)) (Binding, error) {
	conn, err := grpc.NewClient(b.target, b.dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: create client for %s: %w", ErrRemoteCall, b.target, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	binding := &grpcBinding{
		conn:   conn,
		cancel: cancel,
		logger: b.logger,
	}

	conn.Connect()
	go binding.watch(ctx, func() {
		ready(newGRPCProxyService(conn, b.callTimeout))
	})

	return binding, nil
}

type grpcBinding struct {
	conn   *grpc.ClientConn
	cancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error

	logger *logger.Logger
}

func (g *grpcBinding) watch(ctx context.Context, onReady func()) {
	for {
		state := g.conn.GetState()
		switch state {
		case connectivity.Ready:
			if ctx.Err() == nil {
				g.logger.Debug().Str("target", g.conn.Target()).Msg("service binding ready")
				onReady()
			}
			return
		case connectivity.Shutdown:
			return
		case connectivity.Idle:
			g.conn.Connect()
		case connectivity.TransientFailure:
			g.logger.Debug().Str("target", g.conn.Target()).Msg("service binding is retrying")
		}

		if !g.conn.WaitForStateChange(ctx, state) {
			return
		}
	}
}

// Close implements [Binding]. It stops the watcher and closes the channel;
// the ProxyService handed to ready fails every call afterwards.
func (g *grpcBinding) Close() error {
	g.closeOnce.Do(func() {
		g.cancel()
		g.closeErr = g.conn.Close()
	})
	return g.closeErr
}
