/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx carries statuses across gRPC.
//
// Server interceptors turn handler errors into gRPC status errors whose code
// comes from an apis.Mapper and whose details include a google.rpc.ErrorInfo
// naming the canonical code. The client interceptor reverses that, so a
// status returned by a server handler arrives at the caller with the same
// code even when the mapper projected it onto a different gRPC code.
package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/status"
	"dirpx.dev/status/adapter"
	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"dirpx.dev/status/logx"
	"dirpx.dev/status/mapper"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// Option configures interceptors and ToGRPC.
type Option func(*options)

type options struct {
	mapper apis.Mapper
	domain string
	logger *zap.Logger
}

// WithMapper sets the mapper used to pick the gRPC code.
// The default is mapper.Default().
func WithMapper(m apis.Mapper) Option {
	return func(o *options) { o.mapper = m }
}

// WithDomain sets ErrorInfo.Domain on outgoing errors, usually the service
// name ("users.example.com"). On the client side, only ErrorInfo details
// from that domain are trusted.
func WithDomain(domain string) Option {
	return func(o *options) { o.domain = domain }
}

// WithLogger logs every converted failure at the level suggested by
// logx.Level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func newOptions(opts []Option) *options {
	o := applyOptions(opts)
	if o.mapper == nil {
		o.mapper = mapper.Default()
	}
	return o
}

// ToGRPC converts st into a gRPC status error. Ok statuses yield nil.
//
// The gRPC code is resolved through the mapper; an ErrorInfo detail records
// the canonical code name and the configured domain.
func ToGRPC(st status.Status, opts ...Option) error {
	return newOptions(opts).toGRPC(st)
}

func (o *options) toGRPC(st status.Status) error {
	if st.OK() {
		return nil
	}
	base := gstatus.New(o.mapper.GRPCStatus(st.Code()), st.Message())

	// If the detail cannot be attached, the bare status still carries the code.
	with, err := base.WithDetails(adapter.ErrorInfo(st, o.domain))
	if err != nil {
		return base.Err()
	}
	return with.Err()
}

// convert maps a handler error. Errors that already carry a gRPC status and
// are not statuses of ours are returned as-is.
func (o *options) convert(method string, err error) error {
	var own status.Status
	if !errors.As(err, &own) {
		if _, ok := gstatus.FromError(err); ok {
			return err
		}
	}
	st := status.FromError(err)
	if o.logger != nil {
		if ce := o.logger.Check(logx.Level(st.Code()), "grpc handler failed"); ce != nil {
			ce.Write(zap.String("method", method), logx.Field("status", st))
		}
	}
	return o.toGRPC(st)
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors into gRPC status errors.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, o.convert(info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	o := newOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return o.convert(info.FullMethod, err)
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// failed calls into status errors (see FromGRPC). Only WithDomain is
// consulted.
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	o := applyOptions(opts)
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}
		return o.fromGRPC(err).Err()
	}
}

// FromGRPC converts an error returned by a gRPC call into a Status.
//
// The code recorded in an ErrorInfo detail wins over the wire code when its
// reason is a canonical code name and, with WithDomain, when its domain
// matches. Errors without a gRPC status go through status.FromError.
func FromGRPC(err error, opts ...Option) status.Status {
	return applyOptions(opts).fromGRPC(err)
}

func (o *options) fromGRPC(err error) status.Status {
	if err == nil {
		return status.OK()
	}
	gs, ok := gstatus.FromError(err)
	if !ok {
		return status.FromError(err)
	}
	c := code.FromGRPC(gs.Code())
	if info, ok := ExtractErrorInfo(err); ok && (o.domain == "" || info.GetDomain() == o.domain) {
		if ic, ok := adapter.CodeFromErrorInfo(info); ok {
			c = ic
		}
	}
	if c == code.OK {
		// A non-nil error never becomes OK.
		c = code.Unknown
	}
	return status.New(c, gs.Message())
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
