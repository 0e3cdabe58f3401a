package gateway

import "errors"

var (
	ErrEmptyEndpoint = errors.New("gateway: endpoint URL is empty")
	ErrNonOKStatus   = errors.New("gateway: endpoint returned a non-2xx status")
)
