package smpp

import (
	"crypto/tls"
	"net"
	"time"

	"github.com/pires/go-proxyproto"
	log "github.com/sirupsen/logrus"
)

// proxyHeaderTimeout bounds how long a new connection may take to send its
// PROXY header.
const proxyHeaderTimeout = 10 * time.Second

// Listen opens a TCP listener on address, optionally with TLS. With
// proxyProtocol set, connections are expected to start with a HAProxy PROXY
// header and report the original client as their remote address. The header
// arrives in cleartext ahead of any TLS handshake.
func Listen(address string, config *tls.Config, proxyProtocol bool) (net.Listener, error) {
	list, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}
	if proxyProtocol {
		log.WithField("address", list.Addr().String()).Info("accepting PROXY protocol headers")
		list = &proxyproto.Listener{
			Listener:          list,
			ReadHeaderTimeout: proxyHeaderTimeout,
		}
	}
	if config != nil {
		list = tls.NewListener(list, config)
	}
	return list, nil
}
