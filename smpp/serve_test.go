package smpp

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"io"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenProxyProtocol(t *testing.T) {
	l, err := Listen("127.0.0.1:0", nil, true)
	require.NoError(t, err)
	defer l.Close()

	go func() {
		c, err := net.Dial("tcp", l.Addr().String())
		if err != nil {
			return
		}
		defer c.Close()
		_, _ = c.Write([]byte("PROXY TCP4 192.0.2.10 127.0.0.1 40000 80\r\nhi"))
	}()

	conn, err := l.Accept()
	require.NoError(t, err)
	defer conn.Close()

	assert := assert.New(t)
	assert.Equal("192.0.2.10:40000", conn.RemoteAddr().String())

	body, err := io.ReadAll(conn)
	assert.NoError(err)
	assert.Equal("hi", string(body))
}

func TestListenPlain(t *testing.T) {
	l, err := Listen("127.0.0.1:0", nil, false)
	require.NoError(t, err)
	defer l.Close()

	go func() {
		c, err := net.Dial("tcp", l.Addr().String())
		if err == nil {
			_, _ = c.Write([]byte("hi"))
			c.Close()
		}
	}()

	conn, err := l.Accept()
	require.NoError(t, err)
	defer conn.Close()

	body, err := io.ReadAll(conn)
	assert.NoError(t, err)
	assert.Equal(t, "hi", string(body))
}

func selfSigned(t *testing.T) *tls.Config {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return &tls.Config{Certificates: []tls.Certificate{{Certificate: [][]byte{der}, PrivateKey: key}}}
}

func TestListenProxyProtocolTLS(t *testing.T) {
	l, err := Listen("127.0.0.1:0", selfSigned(t), true)
	require.NoError(t, err)
	defer l.Close()

	go func() {
		c, err := net.Dial("tcp", l.Addr().String())
		if err != nil {
			return
		}
		defer c.Close()
		// the load balancer writes the header before the client's handshake
		if _, err := c.Write([]byte("PROXY TCP4 192.0.2.10 127.0.0.1 40000 443\r\n")); err != nil {
			return
		}
		tc := tls.Client(c, &tls.Config{InsecureSkipVerify: true})
		if _, err := tc.Write([]byte("hi")); err != nil {
			return
		}
		_ = tc.Close()
	}()

	conn, err := l.Accept()
	require.NoError(t, err)
	defer conn.Close()

	assert := assert.New(t)
	_, ok := conn.(*tls.Conn)
	assert.True(ok)
	assert.Equal("192.0.2.10:40000", conn.RemoteAddr().String())

	body, err := io.ReadAll(conn)
	assert.NoError(err)
	assert.Equal("hi", string(body))
}
