package syncchan

import (
	"reflect"
	"sort"

	"github.com/samber/lo"
)

// Direction identifies whether a SelectOp wants to send or receive.
type Direction int

const (
	// Send means the op wants to append Value to Chan.
	Send Direction = iota
	// Recv means the op wants to pop a payload off Chan into Dest.
	Recv
)

// SelectOp describes one candidate operation in a Select call.
type SelectOp struct {
	// Chan is the channel this op operates on.
	Chan *Channel
	// Dir is Send or Recv.
	Dir Direction
	// Value is the payload to send. Only read when Dir == Send.
	Value any
	// Dest receives the popped payload on a successful RECV. Only written
	// when Dir == Recv; may be nil if the caller does not need the value.
	Dest *any
}

// Select waits on a set of pending send/receive intents over arbitrary
// channels and commits exactly one of them. It returns the index of the
// op that fired and a nil error on success, or the index of the channel
// that caused an error together with ErrClosed/ErrGeneric.
//
// The ops array may reference the same channel more than once, even with
// different directions; Select locks each distinct channel exactly once
// (by pointer identity) and in a deterministic order (by memory address)
// so two concurrent Select calls sharing channels never deadlock against
// each other.
func Select(ops []SelectOp) (selected int, err error) {
	self := newNotifier()

	for {
		distinct := canonicalChannels(ops)
		lockAll(distinct)

		purgeStale(ops, self)

		if idx, res, ok := scanFireable(ops); ok {
			unlockAll(distinct)
			return idx, res
		}

		// Sleep path: lock the notifier's own mutex before releasing any
		// channel lock. Any peer that will later call self.wake() must
		// first acquire a channel lock we still hold (to walk its waiter
		// list) and then self.mu (to signal) - both unavailable until we
		// are asleep on self.cond, so no wakeup can be missed between
		// releasing the channel locks and starting to wait.
		self.mu.Lock()
		registerOps(ops, self)
		unlockAll(distinct)

		self.cond.Wait()
		self.mu.Unlock()
	}
}

// canonicalChannels returns the distinct channels referenced by ops,
// deduped by pointer identity (first occurrence wins) and sorted by
// address so repeated Select calls over the same channel set always lock
// in the same order.
func canonicalChannels(ops []SelectOp) []*Channel {
	chans := make([]*Channel, len(ops))
	for i, op := range ops {
		chans[i] = op.Chan
	}

	distinct := lo.UniqBy(chans, func(ch *Channel) uintptr {
		return reflect.ValueOf(ch).Pointer()
	})

	sort.Slice(distinct, func(i, j int) bool {
		return reflect.ValueOf(distinct[i]).Pointer() < reflect.ValueOf(distinct[j]).Pointer()
	})
	return distinct
}

func lockAll(chans []*Channel) {
	for _, ch := range chans {
		ch.mu.Lock()
	}
}

func unlockAll(chans []*Channel) {
	for _, ch := range chans {
		ch.mu.Unlock()
	}
}

// purgeStale removes self from every waiter list it may have been left
// registered on by a previous iteration of this same Select call's retry
// loop, making each attempt idempotent.
func purgeStale(ops []SelectOp, self *notifier) {
	for _, op := range ops {
		if op.Dir == Send {
			op.Chan.waitingSend.Remove(self)
		} else {
			op.Chan.waitingRecv.Remove(self)
		}
	}
}

// scanFireable performs the linear scan over ops in array order, firing
// the first op whose channel is closed (committing an error) or whose
// buffer state permits the requested direction without waiting.
func scanFireable(ops []SelectOp) (index int, err error, fired bool) {
	for i, op := range ops {
		ch := op.Chan

		if !ch.open {
			return i, ErrClosed, true
		}

		switch op.Dir {
		case Send:
			if ch.buf.Len() < ch.buf.Cap() {
				if addErr := ch.buf.Add(op.Value); addErr != nil {
					return i, ErrGeneric, true
				}
				ch.notEmpty.Signal()
				ch.wakeWaiters(ch.waitingRecv)
				return i, nil, true
			}
		case Recv:
			if ch.buf.Len() > 0 {
				payload, rmErr := ch.buf.Remove()
				if rmErr != nil {
					return i, ErrGeneric, true
				}
				if op.Dest != nil {
					*op.Dest = payload
				}
				ch.notFull.Signal()
				ch.wakeWaiters(ch.waitingSend)
				return i, nil, true
			}
		}
	}
	return 0, nil, false
}

// registerOps inserts self into the waiter list of every (channel,
// direction) pair in ops that has not already been registered in this
// iteration, deduping so a channel referenced twice with the same
// direction is only inserted once.
func registerOps(ops []SelectOp, self *notifier) {
	type key struct {
		ch  *Channel
		dir Direction
	}
	seen := make(map[key]bool, len(ops))

	for _, op := range ops {
		k := key{op.Chan, op.Dir}
		if seen[k] {
			continue
		}
		seen[k] = true

		if op.Dir == Send {
			op.Chan.waitingSend.Insert(self)
		} else {
			op.Chan.waitingRecv.Insert(self)
		}
	}
}
