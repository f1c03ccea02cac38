package goSuite

import (
	"errors"

	"github.com/MrEthical07/goSuite/wire"
)

var (
	// ErrBrokerNotReady is an exported constant or variable used by the suite broker.
	ErrBrokerNotReady = errors.New("broker not initialized")
	// ErrTicketUnavailable is an exported constant or variable used by the suite broker.
	ErrTicketUnavailable = errors.New("suite ticket unavailable")
	// ErrTokenUnavailable is an exported constant or variable used by the suite broker.
	ErrTokenUnavailable = errors.New("suite access token unavailable")
	// ErrInstallStateDisabled is an exported constant or variable used by the suite broker.
	ErrInstallStateDisabled = errors.New("install state disabled")
)

// RemoteError is the error kind produced whenever a remote response
// carries a non-zero errcode. Its Error() is exactly the
// server-supplied errmsg. Transport-level failures are never converted
// into RemoteError.
type RemoteError = wire.RemoteError
