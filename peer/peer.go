// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// connectTimeout bounds how long the TCP dial plus version handshake may
// take before a peer is marked Timeout.
const connectTimeout = 10 * time.Second

// pingInterval is the keep-alive period; a peer that hasn't exchanged a
// pong in this long is assumed dead.
const pingInterval = 120 * time.Second

// outMsg bundles a message with an optional completion signal used by
// outHandler to serialize writes across goroutines.
type outMsg struct {
	msg  wire.Message
	done chan struct{}
}

// Dialer opens an outbound connection, the same shape as
// golang.org/x/net/proxy.Dialer. NewOutboundPeer defaults to a plain
// net.Dialer; callers routing through a SOCKS proxy pass their own.
type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
}

type directDialer struct{ timeout time.Duration }

func (d directDialer) Dial(network, addr string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: d.timeout}
	return dialer.Dial(network, addr)
}

// Listener receives the events a Peer reports as it runs: decoded
// messages, state transitions, and terminal errors. OnMessage is called
// from the peer's reader goroutine. OnStateChange is called from whichever
// goroutine changes the state (the Connect caller, the reader, writer or
// ping goroutine, or a caller of Disconnect), so the two methods may run
// concurrently for the same peer.
type Listener interface {
	// OnMessage is invoked for every successfully decoded inbound message
	// other than version/verack/ping/pong, which peer handles internally.
	OnMessage(p *Peer, msg wire.Message)
	// OnStateChange is invoked whenever p's State bitmask changes.
	OnStateChange(p *Peer, old, updated State)
}

// Peer owns one TCP connection to a remote node: the version handshake,
// one reader goroutine decoding framed messages into a bounded accumulator
// buffer, one writer goroutine serializing outbound messages, and a ping
// ticker.
type Peer struct {
	net.Conn // set at construction (inbound) or once Connect dials (outbound); nil before that

	chainParams *chaincfg.Params
	addr        string
	inbound     bool
	listener    Listener
	dialer      Dialer

	stateMu sync.Mutex
	state   State

	outQueue chan outMsg
	quit     chan struct{}
	wg       sync.WaitGroup

	lastPingNonce uint64
	lastPongTime  int64 // unix seconds, atomic

	startHeight     int32
	remoteUserAgent string
	remoteVersion   int32
}

// NewOutboundPeer constructs a Peer that will dial addr when Connect is
// called.
func NewOutboundPeer(chainParams *chaincfg.Params, addr string, listener Listener) *Peer {
	return &Peer{
		chainParams: chainParams,
		addr:        addr,
		inbound:     false,
		listener:    listener,
		dialer:      directDialer{timeout: connectTimeout},
		outQueue:    make(chan outMsg, 50),
		quit:        make(chan struct{}),
	}
}

// SetDialer overrides the dialer NewOutboundPeer uses in Connect, e.g. to
// route through a SOCKS proxy. It must be called before
// Connect.
func (p *Peer) SetDialer(d Dialer) { p.dialer = d }

// NewInboundPeer wraps an already-accepted connection.
func NewInboundPeer(chainParams *chaincfg.Params, conn net.Conn, listener Listener) *Peer {
	return &Peer{
		Conn:        conn,
		chainParams: chainParams,
		addr:     conn.RemoteAddr().String(),
		inbound:  true,
		listener: listener,
		outQueue: make(chan outMsg, 50),
		quit:     make(chan struct{}),
	}
}

// State returns the peer's current state bitmask.
func (p *Peer) State() State {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.state
}

func (p *Peer) setState(mask State, on bool) {
	p.stateMu.Lock()
	old := p.state
	if on {
		p.state |= mask
	} else {
		p.state &^= mask
	}
	updated := p.state
	p.stateMu.Unlock()
	if old != updated && p.listener != nil {
		p.listener.OnStateChange(p, old, updated)
	}
}

// SetState lets an owning coordinator (e.g. a header-sync state machine)
// record protocol state Peer does not manage internally, such as
// HeaderSync, BlockSync, or Misbehaved.
func (p *Peer) SetState(mask State, on bool) { p.setState(mask, on) }

// Addr returns the peer's remote address string.
func (p *Peer) Addr() string { return p.addr }

// Inbound reports whether this connection was accepted rather than dialed.
func (p *Peer) Inbound() bool { return p.inbound }

// StartHeight returns the chain height the remote peer advertised in its
// version message.
func (p *Peer) StartHeight() int32 { return p.startHeight }

// Connect dials the peer (if outbound), performs the version handshake,
// and starts the reader/writer/ping goroutines. It must be called at most
// once.
func (p *Peer) Connect(myStartHeight int32, userAgent string) error {
	p.setState(Connecting, true)

	if !p.inbound {
		conn, err := p.dialer.Dial("tcp", p.addr)
		if err != nil {
			p.setState(Connecting, false)
			p.setState(Errored, true)
			return err
		}
		p.Conn = conn
	}

	if err := p.Conn.SetDeadline(time.Now().Add(connectTimeout)); err != nil {
		p.setState(Errored, true)
		return err
	}
	if err := p.handshake(myStartHeight, userAgent); err != nil {
		p.setState(Connecting, false)
		if errors.Is(err, errHandshakeTimeout) {
			p.setState(Timeout, true)
		} else {
			p.setState(Errored, true)
		}
		p.Conn.Close()
		return err
	}
	if err := p.Conn.SetDeadline(time.Time{}); err != nil {
		return err
	}

	p.setState(Connecting, false)
	p.setState(Connected, true)

	p.wg.Add(3)
	go p.inHandler()
	go p.outHandler()
	go p.pingHandler()
	return nil
}

var errHandshakeTimeout = errors.New("peer: version handshake timed out")

// handshake performs the synchronous version/verack exchange: send our version, read theirs, send verack, read theirs.
func (p *Peer) handshake(myStartHeight int32, userAgent string) error {
	local := p.Conn.LocalAddr()
	remote := p.Conn.RemoteAddr()

	localAddr := addrFromNetAddr(local)
	remoteAddr := addrFromNetAddr(remote)

	ours := &wire.MsgVersion{
		ProtocolVersion: int32(wire.ProtocolVersion),
		Services:        wire.SFNodeNetwork,
		Timestamp:       time.Now().Unix(),
		AddrRecv:        remoteAddr,
		AddrFrom:        localAddr,
		Nonce:           randomNonce(),
		UserAgent:       userAgent,
		StartHeight:     myStartHeight,
		Relay:           true,
	}
	if err := wire.WriteMessage(p.Conn, ours, p.chainParams.Net); err != nil {
		return err
	}

	msg, cmd, _, err := wire.ReadMessage(p.Conn, p.chainParams.Net, wire.MakeEmptyMessage)
	if err != nil {
		return err
	}
	theirVersion, ok := msg.(*wire.MsgVersion)
	if cmd != wire.CmdVersion || !ok {
		return fmt.Errorf("peer: expected version message, got %q", cmd)
	}
	p.remoteVersion = theirVersion.ProtocolVersion
	p.remoteUserAgent = theirVersion.UserAgent
	p.startHeight = theirVersion.StartHeight

	if err := wire.WriteMessage(p.Conn, &wire.MsgVerAck{}, p.chainParams.Net); err != nil {
		return err
	}

	msg, cmd, _, err = wire.ReadMessage(p.Conn, p.chainParams.Net, wire.MakeEmptyMessage)
	if err != nil {
		return err
	}
	if cmd != wire.CmdVerAck {
		return fmt.Errorf("peer: expected verack message, got %q", cmd)
	}
	_ = msg
	return nil
}

func addrFromNetAddr(a net.Addr) wire.NetAddress {
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return wire.NetAddress{}
	}
	return wire.NetAddress{Services: wire.SFNodeNetwork, IP: tcpAddr.IP, Port: uint16(tcpAddr.Port)}
}

func randomNonce() uint64 {
	// A peer-identification nonce; collision resistance to identify
	// self-connections is the only requirement, not unpredictability.
	return uint64(time.Now().UnixNano())
}

// Send enqueues msg for delivery on the outbound writer goroutine. It
// never blocks past the handler's queue capacity except by backpressure,
// preserving per-peer message ordering.
func (p *Peer) Send(msg wire.Message) {
	select {
	case p.outQueue <- outMsg{msg: msg}:
	case <-p.quit:
	}
}

// inHandler owns the connection's read side: it reads exactly one framed
// message at a time into a freshly allocated buffer (bufio.Reader provides
// the bounded accumulator; nothing downstream holds a reference into it
// past this loop iteration) and dispatches it to the listener or to
// internal ping/pong handling.
func (p *Peer) inHandler() {
	defer p.wg.Done()
	reader := bufio.NewReaderSize(p.Conn, 64*1024)
	for {
		msg, _, _, err := wire.ReadMessage(reader, p.chainParams.Net, wire.MakeEmptyMessage)
		if err != nil {
			select {
			case <-p.quit:
			default:
				log.Debugf("peer %s: read error: %v", p.addr, err)
				p.Disconnect(DisconnectedFromRemote)
			}
			return
		}
		if msg == nil {
			continue
		}
		switch m := msg.(type) {
		case *wire.MsgPing:
			p.Send(&wire.MsgPong{Nonce: m.Nonce})
		case *wire.MsgPong:
			atomic.StoreInt64(&p.lastPongTime, time.Now().Unix())
		default:
			if p.listener != nil {
				p.listener.OnMessage(p, msg)
			}
		}
	}
}

// outHandler owns the connection's write side, serializing every Send call
// plus the ping ticker's pings onto the wire in submission order.
func (p *Peer) outHandler() {
	defer p.wg.Done()
	for {
		select {
		case out := <-p.outQueue:
			if err := wire.WriteMessage(p.Conn, out.msg, p.chainParams.Net); err != nil {
				log.Debugf("peer %s: write error: %v", p.addr, err)
				p.Disconnect(Errored)
				return
			}
			if out.done != nil {
				close(out.done)
			}
		case <-p.quit:
			return
		}
	}
}

// pingHandler sends a ping every pingInterval and disconnects if no pong
// has been observed since the last one went out.
func (p *Peer) pingHandler() {
	defer p.wg.Done()
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	var lastPingSent int64
	for {
		select {
		case <-ticker.C:
			if lastPingSent != 0 && atomic.LoadInt64(&p.lastPongTime) < lastPingSent {
				log.Debugf("peer %s: no pong since last ping, disconnecting", p.addr)
				p.Disconnect(Errored)
				return
			}
			nonce := randomNonce()
			p.lastPingNonce = nonce
			lastPingSent = time.Now().Unix()
			p.Send(&wire.MsgPing{Nonce: nonce})
		case <-p.quit:
			return
		}
	}
}

// Disconnect tears down the connection and marks the peer with the given
// terminal state bit (Disconnected for a local decision, or
// DisconnectedFromRemote/Errored/Timeout for the remote or transport
// causing it). Safe to call more than once.
func (p *Peer) Disconnect(cause State) {
	select {
	case <-p.quit:
		return
	default:
		close(p.quit)
	}
	if p.Conn != nil {
		p.Conn.Close()
	}
	p.setState(Connected, false)
	p.setState(cause, true)
}
