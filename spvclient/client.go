// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spvclient

import (
	"context"
	"sync"
	"time"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/connmgr"
	"github.com/dogecoinfoundation/libdogecoin-sub000/headersdb"
	"github.com/dogecoinfoundation/libdogecoin-sub000/peer"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// headersRequestStall is how long a getheaders request may go unanswered
// before the client abandons the request; the next header sync goes to the
// connected peer with the highest StartHeight, which may be the same peer.
const headersRequestStall = 60 * time.Second

// syncWindow is the lookback applied to oldestItemOfInterest both when
// picking a fast-start checkpoint and when deciding a header is recent
// enough to switch from header sync to full block download (900*5 and
// 4500s are the same quantity).
const syncWindow = 4500 * time.Second

// tickInterval is how often the client re-evaluates stalls and whether a
// new header-sync attempt should begin.
const tickInterval = 5 * time.Second

// SyncTransactionFunc is offered every transaction seen in a downloaded
// block, alongside its position in the block and the block's index entry.
type SyncTransactionFunc func(tx *wire.MsgTx, pos int, block *headersdb.BlockIndex)

// Config configures a Client.
type Config struct {
	ChainParams *chaincfg.Params
	HeadersDB   headersdb.DB

	// OldestItemOfInterest is the earliest time the wallet cares about
	// transactions for; headers older than this minus syncWindow are
	// skipped via checkpoint fast-start when UseCheckpoints is set.
	OldestItemOfInterest time.Time
	UseCheckpoints       bool

	DesiredPeers uint32
	Seeds        []string
	ProxyAddr    string
	ClientString string
	StartHeight  func() int32

	SyncTransaction SyncTransactionFunc
	SyncCompleted   func()
}

// Client drives header sync and block download across a connmgr.Group of
// peers, persisting progress to a headersdb.DB.
type Client struct {
	cfg   Config
	group *connmgr.Group

	mu                 sync.Mutex
	peers              map[string]*peer.Peer
	headerSync         bool
	blockSync          bool
	headerSyncPeer     *peer.Peer
	lastHeadersRequest time.Time
	lastRequestedInv   chainhash.Hash
	syncCompleted      bool
}

// New constructs a Client and the connmgr.Group it drives.
func New(cfg Config) (*Client, error) {
	c := &Client{
		cfg:   cfg,
		peers: make(map[string]*peer.Peer),
	}
	group, err := connmgr.New(connmgr.Config{
		ChainParams:  cfg.ChainParams,
		DesiredCount: cfg.DesiredPeers,
		ClientString: cfg.ClientString,
		StartHeight:  cfg.StartHeight,
		Seeds:        cfg.Seeds,
		ProxyAddr:    cfg.ProxyAddr,
		Callbacks: connmgr.Callbacks{
			ParseCmd:         c.onMessage,
			ConnStateChanged: c.onStateChange,
			HandshakeDone:    c.onHandshakeDone,
		},
	})
	if err != nil {
		return nil, err
	}
	c.group = group
	return c, nil
}

// Run starts the underlying connmgr.Group and the sync-maintenance loop. It
// blocks until ctx is canceled.
func (c *Client) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.group.Run(ctx)
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.checkStall()
			c.maybeStartHeaderSync()
		case <-ctx.Done():
			wg.Wait()
			return
		}
	}
}

// SyncCompletedDone reports whether the two-peer chain-tip agreement
// signal has fired.
func (c *Client) SyncCompletedDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncCompleted
}

func (c *Client) onHandshakeDone(p *peer.Peer) {
	c.mu.Lock()
	c.peers[p.Addr()] = p
	c.mu.Unlock()
	c.maybeStartHeaderSync()
}

func (c *Client) onStateChange(p *peer.Peer, old, updated peer.State) {
	if !updated.Has(peer.Disconnected) && !updated.Has(peer.DisconnectedFromRemote) && !updated.Has(peer.Errored) {
		return
	}
	c.mu.Lock()
	delete(c.peers, p.Addr())
	if c.headerSyncPeer == p {
		c.headerSync = false
		c.headerSyncPeer = nil
	}
	c.mu.Unlock()
	c.maybeStartHeaderSync()
}

func (c *Client) onMessage(p *peer.Peer, msg wire.Message) {
	switch m := msg.(type) {
	case *wire.MsgHeaders:
		c.handleHeaders(p, m)
	case *wire.MsgInv:
		c.handleInv(p, m)
	case *wire.MsgBlock:
		c.handleBlock(p, m)
	}
}

// maybeStartHeaderSync begins header sync against the best-known connected
// peer if nothing is already in flight.
func (c *Client) maybeStartHeaderSync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.headerSync || c.blockSync || c.syncCompleted {
		return
	}
	best := c.bestPeerLocked()
	if best == nil {
		return
	}
	locator, err := c.buildLocatorLocked()
	if err != nil {
		log.Debugf("spvclient: building block locator: %v", err)
		return
	}
	c.headerSync = true
	c.headerSyncPeer = best
	c.lastHeadersRequest = time.Now()
	best.SetState(peer.HeaderSync, true)
	best.Send(&wire.MsgGetHeaders{
		ProtocolVersion:    wire.ProtocolVersion,
		BlockLocatorHashes: locator,
	})
}

func (c *Client) bestPeerLocked() *peer.Peer {
	var best *peer.Peer
	for _, p := range c.peers {
		if best == nil || p.StartHeight() > best.StartHeight() {
			best = p
		}
	}
	return best
}

// buildLocatorLocked computes a getheaders/getblocks locator from the
// current chain tip, or from the newest qualifying checkpoint when the
// chain is empty and checkpoint fast-start is enabled.
func (c *Client) buildLocatorLocked() ([]chainhash.Hash, error) {
	locator, err := c.cfg.HeadersDB.FillBlockLocator()
	if err == nil {
		return locator, nil
	}
	if err != headersdb.ErrEmptyChain {
		return nil, err
	}
	if c.cfg.UseCheckpoints {
		threshold := c.cfg.OldestItemOfInterest.Add(-syncWindow)
		var chosen *chaincfg.Checkpoint
		for i := range c.cfg.ChainParams.Checkpoints {
			cp := &c.cfg.ChainParams.Checkpoints[i]
			if cp.Timestamp.Before(threshold) && (chosen == nil || cp.Height > chosen.Height) {
				chosen = cp
			}
		}
		if chosen != nil {
			if !c.cfg.HeadersDB.HasCheckpointStart() {
				if err := c.cfg.HeadersDB.SetCheckpointStart(*chosen); err != nil {
					return nil, err
				}
			}
			return []chainhash.Hash{chosen.Hash}, nil
		}
	}
	return nil, nil
}

func (c *Client) handleHeaders(p *peer.Peer, msg *wire.MsgHeaders) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p != c.headerSyncPeer {
		return
	}
	threshold := c.cfg.OldestItemOfInterest.Add(-syncWindow)
	crossed := false
	for _, h := range msg.Headers {
		if _, err := c.cfg.HeadersDB.ConnectHeader(h); err != nil {
			log.Debugf("spvclient: connect header: %v", err)
			continue
		}
		if time.Unix(int64(h.Timestamp), 0).After(threshold) {
			crossed = true
		}
	}

	if crossed {
		c.beginBlockSyncLocked(p)
		return
	}
	if len(msg.Headers) == wire.MaxBlockHeadersPerMsg {
		c.requestNextHeadersLocked(p)
		return
	}
	c.checkSyncCompletedLocked()
}

func (c *Client) requestNextHeadersLocked(p *peer.Peer) {
	locator, err := c.buildLocatorLocked()
	if err != nil {
		log.Debugf("spvclient: building continuation locator: %v", err)
		return
	}
	c.lastHeadersRequest = time.Now()
	p.Send(&wire.MsgGetHeaders{
		ProtocolVersion:    wire.ProtocolVersion,
		BlockLocatorHashes: locator,
	})
}

func (c *Client) beginBlockSyncLocked(p *peer.Peer) {
	c.headerSync = false
	c.headerSyncPeer = nil
	c.blockSync = true
	p.SetState(peer.HeaderSync, false)
	p.SetState(peer.BlockSync, true)

	locator, err := c.buildLocatorLocked()
	if err != nil {
		log.Debugf("spvclient: building getblocks locator: %v", err)
		return
	}
	p.Send(&wire.MsgGetBlocks{
		ProtocolVersion:    wire.ProtocolVersion,
		BlockLocatorHashes: locator,
	})
}

func (c *Client) handleInv(p *peer.Peer, msg *wire.MsgInv) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.blockSync {
		return
	}
	var haveBlock bool
	for _, iv := range msg.InvList {
		if iv.Type == wire.InvTypeBlock {
			c.lastRequestedInv = iv.Hash
			haveBlock = true
		}
	}
	if !haveBlock {
		return
	}
	p.Send(&wire.MsgGetData{InvList: msg.InvList})
}

func (c *Client) handleBlock(p *peer.Peer, msg *wire.MsgBlock) {
	hash := msg.Header.BlockHash()

	var idx *headersdb.BlockIndex
	if tip, err := c.cfg.HeadersDB.ChainTip(); err == nil && tip.Hash == hash {
		idx = tip
	} else {
		connected, err := c.cfg.HeadersDB.ConnectHeader(&msg.Header)
		if err != nil {
			log.Debugf("spvclient: block %s: header not connected: %v", hash, err)
			return
		}
		idx = connected
	}

	if c.cfg.SyncTransaction != nil {
		for pos, tx := range msg.Transactions {
			c.cfg.SyncTransaction(tx, pos, idx)
		}
	}

	c.mu.Lock()
	c.checkSyncCompletedLocked()
	c.mu.Unlock()
}

// checkSyncCompletedLocked fires SyncCompleted exactly once, the instant
// two connected peers report the current chain-tip height as their own.
func (c *Client) checkSyncCompletedLocked() {
	if c.syncCompleted {
		return
	}
	tip, err := c.cfg.HeadersDB.ChainTip()
	if err != nil {
		return
	}
	agree := 0
	for _, p := range c.peers {
		if p.StartHeight() == int32(tip.Height) {
			agree++
		}
	}
	if agree >= 2 {
		c.syncCompleted = true
		if c.cfg.SyncCompleted != nil {
			c.cfg.SyncCompleted()
		}
	}
}

func (c *Client) checkStall() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.headerSync {
		return
	}
	if time.Since(c.lastHeadersRequest) <= headersRequestStall {
		return
	}
	if c.headerSyncPeer != nil {
		c.headerSyncPeer.SetState(peer.HeaderSync, false)
	}
	c.headerSync = false
	c.headerSyncPeer = nil
}
