// Package server exposes the guard over gRPC so a host control loop or
// training harness in another language can call it once per step.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/danielpatrickdp/cartpole-guard/gen/guardpb"
	"github.com/danielpatrickdp/cartpole-guard/internal/attest"
	"github.com/danielpatrickdp/cartpole-guard/internal/config"
	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
	"github.com/danielpatrickdp/cartpole-guard/internal/provenance"
)

// #region server-struct
// Server implements guardpb.SafetyGuardServer.
type Server struct {
	guardpb.UnimplementedSafetyGuardServer

	checker  *guard.Checker
	specHash string
	store    *provenance.Store // nil disables provenance logging
	diag     io.Writer
}

// NewServer creates a guard server. store may be nil.
func NewServer(limits guard.Limits, store *provenance.Store) *Server {
	return &Server{
		checker:  guard.NewChecker(limits),
		specHash: attest.Fingerprint(limits),
		store:    store,
		diag:     os.Stdout,
	}
}

// NewServerWithDiag creates a server with an injected diagnostic sink.
// Used for testing without capturing stdout.
func NewServerWithDiag(limits guard.Limits, store *provenance.Store, diag io.Writer) *Server {
	s := NewServer(limits, store)
	s.diag = diag
	return s
}

// #endregion server-struct

// #region check
// Check evaluates one state/action pair. The diagnostic line on violation is
// part of the observable contract, so it is emitted here as well as in the
// in-process entry point.
func (s *Server) Check(ctx context.Context, req *guardpb.CheckRequest) (*guardpb.CheckReply, error) {
	if req.GetState() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing state")
	}
	if req.GetAction() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing action")
	}

	state := guard.State{
		CartPosition:        req.GetState().GetCartPosition(),
		CartVelocity:        req.GetState().GetCartVelocity(),
		PoleAngle:           req.GetState().GetPoleAngle(),
		PoleAngularVelocity: req.GetState().GetPoleAngularVelocity(),
	}
	action := guard.Action{Force: req.GetAction().GetForce()}

	decision := s.checker.Evaluate(state, action)
	if !decision.Allowed {
		fmt.Fprintln(s.diag, guard.ViolationMessage)
	}
	observeCheck(decision)

	if s.store != nil {
		if err := s.logCheck(req, state, action, decision); err != nil {
			// The decision stands even when the audit write fails.
			log.Printf("provenance write failed: %v", err)
		}
	}

	reply := &guardpb.CheckReply{
		Allowed:  decision.Allowed,
		SpecHash: s.specHash,
	}
	for _, v := range decision.Violations {
		reply.Violations = append(reply.Violations, &guardpb.Violation{
			Kind:   string(v.Kind),
			Reason: v.Reason,
			Value:  v.Value,
			Bound:  v.Bound,
		})
	}
	return reply, nil
}

func (s *Server) logCheck(req *guardpb.CheckRequest, state guard.State, action guard.Action, decision guard.Decision) error {
	var violationsJSON string
	if len(decision.Violations) > 0 {
		data, err := json.Marshal(decision.Violations)
		if err != nil {
			return fmt.Errorf("marshal violations: %w", err)
		}
		violationsJSON = string(data)
	}

	_, err := s.store.Record(provenance.CheckRecord{
		EpisodeID:      req.GetEpisodeId(),
		Step:           req.GetStep(),
		State:          state,
		Force:          action.Force,
		Allowed:        decision.Allowed,
		Reason:         decision.Reason,
		ViolationsJSON: violationsJSON,
		SpecHash:       s.specHash,
	})
	return err
}

// #endregion check

// #region get-limits
// GetLimits reports the active envelope so hosts can verify what they are
// checked against.
func (s *Server) GetLimits(ctx context.Context, req *guardpb.GetLimitsRequest) (*guardpb.GetLimitsReply, error) {
	limits := s.checker.Limits()
	return &guardpb.GetLimitsReply{
		MaxPosition:    limits.MaxPosition,
		MaxAngle:       limits.MaxAngle,
		MaxForce:       limits.MaxForce,
		PositionMargin: limits.PositionMargin,
		AngleMargin:    limits.AngleMargin,
		SpecHash:       s.specHash,
	}, nil
}

// #endregion get-limits

// #region run
// Options configures a guard server process.
type Options struct {
	Addr        string
	MetricsAddr string // empty disables the metrics endpoint
	LimitsPath  string
	DBPath      string // empty disables provenance logging
}

// Run starts the SafetyGuard gRPC server and blocks until it exits.
func Run(opts Options) error {
	limits, err := config.LoadLimits(opts.LimitsPath)
	if err != nil {
		return fmt.Errorf("load limits: %w", err)
	}

	var store *provenance.Store
	if opts.DBPath != "" {
		store, err = provenance.NewStore(opts.DBPath)
		if err != nil {
			return fmt.Errorf("open provenance store: %w", err)
		}
		defer store.Close()
	}

	lis, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", opts.Addr, err)
	}

	if opts.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(opts.MetricsAddr, mux); err != nil {
				log.Printf("guardd: metrics endpoint failed: %v", err)
			}
		}()
	}

	grpcServer := grpc.NewServer()
	guardpb.RegisterSafetyGuardServer(grpcServer, NewServer(limits, store))
	reflection.Register(grpcServer)

	log.Printf("guardd: listening on %s (spec hash %s)", opts.Addr, attest.Fingerprint(limits))
	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// #endregion run
