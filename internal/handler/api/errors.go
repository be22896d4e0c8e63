package api

import "lease-engine/internal/pkg/errs"

var errUnauthenticated = errs.New("request has no authenticated project")
