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

package adapter

import (
	"dirpx.dev/status"
	"dirpx.dev/status/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// ToProto converts a Status into its google.rpc.Status wire form.
//
// The canonical code is carried as-is (the numbers match gRPC). An ok status
// becomes a message with code 0 and no text.
func ToProto(st status.Status) *spb.Status {
	return &spb.Status{
		Code:    int32(st.Code()),
		Message: st.Message(),
	}
}

// FromProto converts a google.rpc.Status back into a Status.
//
// A nil message or code 0 yields OK, dropping any message. Codes outside the
// canonical set become Unknown. Details are ignored.
func FromProto(p *spb.Status) status.Status {
	if p == nil || p.GetCode() == 0 {
		return status.OK()
	}
	c := code.Code(p.GetCode())
	if p.GetCode() < 0 || !c.Known() {
		c = code.Unknown
	}
	return status.New(c, p.GetMessage())
}

// ErrorInfo describes st as a google.rpc.ErrorInfo detail. Reason is the
// canonical code name, so the code survives transports that remap it.
func ErrorInfo(st status.Status, domain string) *errdetails.ErrorInfo {
	return &errdetails.ErrorInfo{
		Reason: st.Code().Name(),
		Domain: domain,
	}
}

// WithDetails returns ToProto(st) with the ErrorInfo detail attached.
// An ok status never carries details.
func WithDetails(st status.Status, domain string) (*spb.Status, error) {
	p := ToProto(st)
	if st.OK() {
		return p, nil
	}
	info, err := anypb.New(ErrorInfo(st, domain))
	if err != nil {
		return nil, err
	}
	p.Details = append(p.Details, info)
	return p, nil
}

// CodeFromErrorInfo recovers the failure code recorded by ErrorInfo.
// It reports false unless the reason is exactly the Name of a non-OK
// canonical code; labels, aliases and numbers written by other services are
// not recognized.
func CodeFromErrorInfo(info *errdetails.ErrorInfo) (code.Code, bool) {
	reason := info.GetReason()
	for _, c := range code.All() {
		if c != code.OK && c.Name() == reason {
			return c, true
		}
	}
	return code.OK, false
}
