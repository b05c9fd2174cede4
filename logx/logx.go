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

// Package logx connects statuses to structured loggers: zap fields and
// object marshalers, and logr key/value pairs.
package logx

import (
	"dirpx.dev/status"
	"dirpx.dev/status/code"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured keys shared by zap and logr output so log aggregation can index
// them the same way.
const (
	KeyCode    = "status.code"
	KeyMessage = "status.message"
)

// Field returns a zap field that renders st as a nested object:
//
//	{"status": {"code": "NOT_FOUND", "message": "no user 7"}}
func Field(key string, st status.Status) zap.Field {
	return zap.Object(key, Object(st))
}

// Object adapts st to zapcore.ObjectMarshaler.
func Object(st status.Status) zapcore.ObjectMarshaler {
	return object{st: st}
}

type object struct {
	st status.Status
}

func (o object) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", o.st.Code().Name())
	if msg := o.st.Message(); msg != "" {
		enc.AddString("message", msg)
	}
	return nil
}

// Level suggests a log level for a status with code c. Failures that point
// at the server itself are errors, transient ones are warnings, and caller
// mistakes are informational.
func Level(c code.Code) zapcore.Level {
	switch c {
	case code.OK:
		return zapcore.DebugLevel
	case code.Unknown, code.Internal, code.DataLoss, code.Unimplemented:
		return zapcore.ErrorLevel
	case code.Unavailable, code.DeadlineExceeded, code.ResourceExhausted, code.Aborted:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// KeysAndValues flattens st into logr key/value pairs:
//
//   - status.code: "NOT_FOUND"
//   - status.message: "no user 7" (omitted when empty)
func KeysAndValues(st status.Status) []any {
	kv := []any{KeyCode, st.Code().Name()}
	if msg := st.Message(); msg != "" {
		kv = append(kv, KeyMessage, msg)
	}
	return kv
}

// Log writes st to l. Ok statuses are logged at V(1) through Info; failures
// go through Error with st as the error value. Extra key/value pairs follow
// the status keys.
func Log(l logr.Logger, st status.Status, msg string, keysAndValues ...any) {
	kv := append(KeysAndValues(st), keysAndValues...)
	if st.OK() {
		l.V(1).Info(msg, kv...)
		return
	}
	l.Error(st, msg, kv...)
}

// NewLogr returns a logr.Logger backed by z, for code that logs statuses
// through logr while the process is configured with zap.
func NewLogr(z *zap.Logger) logr.Logger {
	return zapr.NewLogger(z)
}
