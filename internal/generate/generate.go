// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate routes a validated request to the email or social
// generator.
package generate

import (
	"github.com/pdiddy/copy-engine/internal/email"
	"github.com/pdiddy/copy-engine/internal/social"
	"github.com/pdiddy/copy-engine/pkg/types"
)

// Engine serves both request kinds. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	social *social.Generator
}

// New returns an Engine configured from cfg.
func New(cfg types.SocialConfig) *Engine {
	return &Engine{social: social.New(cfg)}
}

// Generate produces the result for req. A request whose Kind does not match
// its populated record is an internal error: the validator never builds one.
func (e *Engine) Generate(req types.Request) (types.Result, error) {
	switch req.Kind {
	case types.KindEmail:
		if req.Email == nil {
			return types.Result{}, types.Internal("email request has no payload")
		}
		res, err := email.GenerateEmailCopy(*req.Email)
		if err != nil {
			return types.Result{}, err
		}
		return types.Result{Kind: types.KindEmail, Email: &res}, nil
	case types.KindSocial:
		if req.Social == nil {
			return types.Result{}, types.Internal("social request has no payload")
		}
		res, err := e.social.Generate(*req.Social)
		if err != nil {
			return types.Result{}, err
		}
		return types.Result{Kind: types.KindSocial, Social: &res}, nil
	default:
		return types.Result{}, types.Internal("no generator for kind %q", req.Kind)
	}
}
