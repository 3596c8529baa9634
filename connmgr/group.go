// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/net/proxy"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/peer"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// connectAttemptMultiplier is how many extra outbound dials a single
// connectNextNodes pass opens beyond the bare deficit, to absorb dials
// that fail or stall").
const connectAttemptMultiplier = 3

// Callbacks is the set of hooks a Group invokes as peers connect, hand off
// messages, and disconnect. Any nil hook is
// simply skipped.
type Callbacks struct {
	ParseCmd          func(p *peer.Peer, msg wire.Message)
	PostCmd           func(p *peer.Peer, msg wire.Message)
	ConnStateChanged  func(p *peer.Peer, old, updated peer.State)
	HandshakeDone     func(p *peer.Peer)
	ShouldConnectMore func() bool
	PeriodicTimer     func()
}

// Config configures a Group.
type Config struct {
	ChainParams  *chaincfg.Params
	DesiredCount uint32
	ClientString string
	StartHeight  func() int32

	// Seeds is an explicit list of "host:port" peers tried before DNS
	// seeds. If ProxyAddr is set, outbound connections go through a
	// SOCKS5 proxy at that address via golang.org/x/net/proxy.
	Seeds     []string
	ProxyAddr string

	Callbacks Callbacks
}

// Group is the peer-group connection manager: it
// maintains DesiredCount outbound connections, sourcing candidates from
// DNS seeds and explicit IPs, and runs one event loop per Group draining a
// channel fed by every peer's goroutines — the idiomatic-Go rendition of
// the source's single-threaded libevent reactor.
type Group struct {
	cfg Config

	dialer proxy.Dialer

	mu        sync.Mutex
	peers     map[string]*peer.Peer
	connected uint32

	events chan event
	quit   chan struct{}
	wg     sync.WaitGroup
}

type eventKind int

const (
	eventConnected eventKind = iota
	eventDisconnected
	eventMessage
)

type event struct {
	kind eventKind
	peer *peer.Peer
	msg  wire.Message
}

// New constructs a Group from cfg. Call Run to start discovering and
// maintaining connections.
func New(cfg Config) (*Group, error) {
	var dialer proxy.Dialer = proxy.Direct
	if cfg.ProxyAddr != "" {
		d, err := proxy.SOCKS5("tcp", cfg.ProxyAddr, nil, proxy.Direct)
		if err != nil {
			return nil, err
		}
		dialer = d
	}
	return &Group{
		cfg:    cfg,
		dialer: dialer,
		peers:  make(map[string]*peer.Peer),
		events: make(chan event, 100),
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the group's event loop and connection-maintenance ticker. It
// blocks until ctx is canceled or Stop is called.
func (g *Group) Run(ctx context.Context) {
	g.wg.Add(1)
	go g.eventLoop(ctx)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	g.connectNextNodes()
	for {
		select {
		case <-ticker.C:
			if g.cfg.Callbacks.PeriodicTimer != nil {
				g.cfg.Callbacks.PeriodicTimer()
			}
			g.connectNextNodes()
		case <-ctx.Done():
			g.Stop()
			return
		case <-g.quit:
			return
		}
	}
}

// Stop tears down every managed peer and ends the event loop.
func (g *Group) Stop() {
	select {
	case <-g.quit:
		return
	default:
		close(g.quit)
	}
	g.mu.Lock()
	peers := make([]*peer.Peer, 0, len(g.peers))
	for _, p := range g.peers {
		peers = append(peers, p)
	}
	g.mu.Unlock()
	for _, p := range peers {
		p.Disconnect(peer.Disconnected)
	}
	g.wg.Wait()
}

// ConnectedCount returns the number of peers currently in the Connected
// state.
func (g *Group) ConnectedCount() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

// connectNextNodes opens up to connectAttemptMultiplier * (desired -
// connected) outbound sockets in one pass, sourcing candidates from the
// explicit seed list then DNS seeds.
func (g *Group) connectNextNodes() {
	if g.cfg.Callbacks.ShouldConnectMore != nil && !g.cfg.Callbacks.ShouldConnectMore() {
		return
	}
	g.mu.Lock()
	deficit := int(g.cfg.DesiredCount) - int(g.connected)
	g.mu.Unlock()
	if deficit <= 0 {
		return
	}
	toDial := deficit * connectAttemptMultiplier

	candidates := g.candidateAddrs(toDial)
	for _, addr := range candidates {
		if toDial <= 0 {
			break
		}
		g.mu.Lock()
		_, already := g.peers[addr]
		g.mu.Unlock()
		if already {
			continue
		}
		toDial--
		go g.dialOne(addr)
	}
}

// candidateAddrs returns up to want peer addresses: the configured
// explicit seeds first, then whatever the chain's DNS seeds resolve to.
func (g *Group) candidateAddrs(want int) []string {
	var out []string
	for _, s := range g.cfg.Seeds {
		if len(out) >= want {
			return out
		}
		out = append(out, s)
	}
	for _, seed := range g.cfg.ChainParams.DNSSeeds {
		if len(out) >= want {
			break
		}
		ips, err := net.LookupHost(seed.Host)
		if err != nil {
			log.Debugf("connmgr: DNS seed %s lookup failed: %v", seed.Host, err)
			continue
		}
		for _, ip := range ips {
			if len(out) >= want {
				break
			}
			out = append(out, net.JoinHostPort(ip, g.cfg.ChainParams.DefaultPort))
		}
	}
	return out
}

func (g *Group) dialOne(addr string) {
	startHeight := int32(0)
	if g.cfg.StartHeight != nil {
		startHeight = g.cfg.StartHeight()
	}

	p := peer.NewOutboundPeer(g.cfg.ChainParams, addr, &groupListener{g: g})
	if g.dialer != proxy.Direct {
		p.SetDialer(g.dialer)
	}

	g.mu.Lock()
	g.peers[addr] = p
	g.mu.Unlock()

	if err := p.Connect(startHeight, g.cfg.ClientString); err != nil {
		log.Debugf("connmgr: connect to %s failed: %v", addr, err)
		g.mu.Lock()
		delete(g.peers, addr)
		g.mu.Unlock()
		return
	}

	g.mu.Lock()
	g.connected++
	g.mu.Unlock()

	if g.cfg.Callbacks.HandshakeDone != nil {
		g.cfg.Callbacks.HandshakeDone(p)
	}
}

// groupListener adapts peer.Listener callbacks onto the group's single
// event channel, so every cross-peer message is handled from one
// goroutine regardless of which peer's reader produced it.
type groupListener struct{ g *Group }

func (l *groupListener) OnMessage(p *peer.Peer, msg wire.Message) {
	select {
	case l.g.events <- event{kind: eventMessage, peer: p, msg: msg}:
	case <-l.g.quit:
	}
}

func (l *groupListener) OnStateChange(p *peer.Peer, old, updated peer.State) {
	if l.g.cfg.Callbacks.ConnStateChanged != nil {
		l.g.cfg.Callbacks.ConnStateChanged(p, old, updated)
	}
	if updated.Has(peer.Disconnected) || updated.Has(peer.DisconnectedFromRemote) || updated.Has(peer.Errored) {
		select {
		case l.g.events <- event{kind: eventDisconnected, peer: p}:
		case <-l.g.quit:
		}
	}
}

func (g *Group) eventLoop(ctx context.Context) {
	defer g.wg.Done()
	for {
		select {
		case ev := <-g.events:
			switch ev.kind {
			case eventMessage:
				if g.cfg.Callbacks.ParseCmd != nil {
					g.cfg.Callbacks.ParseCmd(ev.peer, ev.msg)
				}
				if g.cfg.Callbacks.PostCmd != nil {
					g.cfg.Callbacks.PostCmd(ev.peer, ev.msg)
				}
			case eventDisconnected:
				g.mu.Lock()
				if _, ok := g.peers[ev.peer.Addr()]; ok {
					delete(g.peers, ev.peer.Addr())
					if g.connected > 0 {
						g.connected--
					}
				}
				g.mu.Unlock()
			}
		case <-ctx.Done():
			return
		case <-g.quit:
			return
		}
	}
}
