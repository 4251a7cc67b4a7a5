package gviz

import (
	"fmt"
	"strings"
)

// Directive holds the response settings a client may request through the
// tqx parameter. Empty fields are unset.
type Directive struct {
	ReqID           string
	Version         string
	Sig             string
	Out             Format
	ResponseHandler string
	OutFileName     string
}

// ParseDirective parses "key:value;key:value". Keys are matched exactly
// against reqId, version, sig, out, responseHandler and outFileName; any
// other key fails with [ErrInvalidDirective]. The value is everything after
// the first colon. Empty pairs are skipped, so a trailing ";" is fine.
func ParseDirective(s string) (Directive, error) {
	var d Directive
	for pair := range strings.SplitSeq(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			return Directive{}, fmt.Errorf("%w: %q has no value", ErrInvalidDirective, pair)
		}
		key = strings.TrimSpace(key)
		switch key {
		case "reqId":
			d.ReqID = value
		case "version":
			d.Version = value
		case "sig":
			d.Sig = value
		case "out":
			f, err := ParseFormat(value)
			if err != nil {
				return Directive{}, err
			}
			d.Out = f
		case "responseHandler":
			d.ResponseHandler = value
		case "outFileName":
			d.OutFileName = value
		default:
			return Directive{}, fmt.Errorf("%w: unknown key %q", ErrInvalidDirective, key)
		}
	}
	return d, nil
}

// String renders the directive back into tqx form, omitting unset fields.
func (d Directive) String() string {
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, k+":"+v)
		}
	}
	add("reqId", d.ReqID)
	add("version", d.Version)
	add("sig", d.Sig)
	add("out", string(d.Out))
	add("responseHandler", d.ResponseHandler)
	add("outFileName", d.OutFileName)
	return strings.Join(parts, ";")
}
