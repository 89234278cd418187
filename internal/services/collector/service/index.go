package service

import (
	"context"

	"herodex/internal/core/dota2"
)

// heroIndex buffers match masks per hero between persistence flushes
// buckets are owned exclusively by the single collector instance
type heroIndex struct {
	buckets map[uint8][]dota2.MatchMask
}

func newHeroIndex() *heroIndex {
	return &heroIndex{buckets: make(map[uint8][]dota2.MatchMask, 256)}
}

// Collect fans a page of matches out into the per-hero buckets and returns
// the advanced cursor: max(cursor, seq+1) over every match in the page,
// order-independent. A match with k distinct nonzero heroes lands in k
// buckets; hero 0 is unset/unknown and never gets a bucket.
func (x *heroIndex) Collect(matches []dota2.Match, cursor uint64) uint64 {
	for _, m := range matches {
		mask := dota2.MaskOf(m)
		for _, h := range mask.Radiant.Heroes() {
			if h != 0 {
				x.buckets[h] = append(x.buckets[h], mask)
			}
		}
		for _, h := range mask.Dire.Heroes() {
			// a hero listed on both sides still lands once
			if h != 0 && !mask.Radiant.Has(h) {
				x.buckets[h] = append(x.buckets[h], mask)
			}
		}
		if m.MatchSeqNum+1 > cursor {
			cursor = m.MatchSeqNum + 1
		}
	}
	return cursor
}

// Len returns the total number of buffered entries across buckets
func (x *heroIndex) Len() int {
	n := 0
	for _, masks := range x.buckets {
		n += len(masks)
	}
	return n
}

// Flush hands each bucket to persist and clears it on success, keeping the
// allocation for the next cycle. A bucket is swapped out before persisting
// so the in-flight batch can never also accept appends. The first failure
// restores that bucket and aborts: buckets not yet attempted keep their
// contents for the next flush
func (x *heroIndex) Flush(ctx context.Context, persist func(ctx context.Context, hero uint8, masks []dota2.MatchMask) error) error {
	for hero, masks := range x.buckets {
		if len(masks) == 0 {
			continue
		}
		x.buckets[hero] = nil
		if err := persist(ctx, hero, masks); err != nil {
			x.buckets[hero] = masks
			return err
		}
		x.buckets[hero] = masks[:0]
	}
	return nil
}
