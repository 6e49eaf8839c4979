// Package filament provides shared value types for representing HTTP
// messages: validated header names and values and an ordered header
// multimap that preserves insertion order, keeps multi-value retrieval at
// O(k), and defends itself against hash-flooding header sets.
package filament

import (
	"iter"

	"github.com/valyala/bytebufferpool"
)

// Implementation notes
//
// The multimap splits its data across two arrays. `entries` is a dense,
// append-only store of (name, value) pairs in overall insertion order;
// every stored value, not just the first per name, lives there. Values
// sharing a name are chained through an explicit `next` index on each
// entry, independent of the hash table, so fetching all k values for a
// name costs O(k) regardless of hash distribution.
//
// `indices` is the actual hash table: an open-addressing, power-of-two
// array mapping a placement hash of the name to the entry holding the
// first value for that name. Collisions resolve by Robin Hood linear
// probing: an inserting key that has probed farther than a resident key
// evicts it and the resident continues probing, which equalizes probe
// distances across the table. Removal uses backward-shift deletion, so
// there are no tombstones and load accounting stays exact.
//
// Entry removal compacts the dense array by shifting later entries
// backward, keeping iteration order equal to insertion order across any
// sequence of inserts and removes. All cross-references are 16-bit
// indices into the arrays rather than pointers.

// size is the index type used for all cross-references. Keeping offsets at
// 16 bits makes an index slot 4 bytes, so more of the table fits a cache
// line.
type size = uint16

// noneIdx is the sentinel for "no entry" in index slots and same-key links.
const noneIdx = size(0xffff)

// MaxEntries is the largest number of stored values a HeaderMap can hold.
// The bound falls out of 16-bit addressing; exceeding it surfaces as
// ErrCapacityExceeded, never as silent truncation.
const MaxEntries = 1 << 15

// minTableSize is the index table's initial capacity.
const minTableSize = 8

// DefaultGrowthLoadFactor is the occupancy ratio (distinct names to table
// capacity) beyond which the index table doubles.
const DefaultGrowthLoadFactor = 0.875

// pos is one slot of the index table. The placement hash is stored next to
// the entry index so probe loops almost never need to touch the entry
// itself.
type pos struct {
	index size // entry holding the first value for the name, or noneIdx
	hash  uint16
}

// entry is one stored (name, value) pair.
type entry struct {
	name  Name
	value Value
	hash  uint16 // placement hash under the current seed; meaningful for heads
	next  size   // next value stored under the same name, or noneIdx
	first bool   // head of its same-key chain; owns the index slot
}

// Tuning carries the multimap's adjustable constants. The zero value means
// "use defaults"; fields exist mainly so tests can pin a seed and force
// danger-state transitions deterministically.
type Tuning struct {
	// GrowthLoadFactor is the distinct-name occupancy beyond which the
	// index table doubles. Zero means DefaultGrowthLoadFactor.
	GrowthLoadFactor float64

	// YellowThreshold and RedThreshold are the danger monitor's probe
	// distance trip points. Zero means the package defaults.
	YellowThreshold int
	RedThreshold    int

	// Seed fixes the placement seed instead of drawing a random one.
	// For tests only: a fixed seed gives up flood resistance.
	Seed      uint64
	FixedSeed bool
}

// DefaultTuning returns the production constants.
func DefaultTuning() Tuning {
	return Tuning{
		GrowthLoadFactor: DefaultGrowthLoadFactor,
		YellowThreshold:  DefaultYellowThreshold,
		RedThreshold:     DefaultRedThreshold,
	}
}

// HeaderMap is an ordered multimap of header Names to Values.
//
// Iteration yields entries in overall insertion order; all values for a
// name are retrievable in their original order at O(k). The map owns its
// storage exclusively and performs no internal synchronization: callers
// that share one across goroutines must impose their own exclusion.
//
// The zero HeaderMap is empty and ready to use.
type HeaderMap struct {
	entries []entry
	indices []pos
	mask    int // len(indices)-1 while the table is allocated
	names   int // distinct names currently stored
	seed    uint64
	seeded  bool
	danger  danger
	tuning  Tuning
}

// NewHeaderMap returns an empty map with default tuning. Storage is
// allocated lazily on first insert.
func NewHeaderMap() *HeaderMap {
	return NewHeaderMapTuned(0, DefaultTuning())
}

// NewHeaderMapCapacity returns an empty map pre-sized to hold n values
// without growing. Callers with strict per-operation latency budgets
// should pre-reserve so growth never lands on a hot path.
func NewHeaderMapCapacity(n int) *HeaderMap {
	return NewHeaderMapTuned(n, DefaultTuning())
}

// NewHeaderMapTuned returns an empty map pre-sized for n values using the
// given tuning constants.
func NewHeaderMapTuned(n int, t Tuning) *HeaderMap {
	m := &HeaderMap{}
	m.tuning = normalizeTuning(t)
	m.danger.yellowAt = m.tuning.YellowThreshold
	m.danger.redAt = m.tuning.RedThreshold
	if t.FixedSeed {
		m.seed = t.Seed
		m.seeded = true
	}
	if n > 0 {
		m.Reserve(n)
	}
	return m
}

func normalizeTuning(t Tuning) Tuning {
	if t.GrowthLoadFactor <= 0 || t.GrowthLoadFactor >= 1 {
		t.GrowthLoadFactor = DefaultGrowthLoadFactor
	}
	if t.YellowThreshold <= 0 {
		t.YellowThreshold = DefaultYellowThreshold
	}
	if t.RedThreshold <= t.YellowThreshold {
		t.RedThreshold = DefaultRedThreshold
		if t.RedThreshold <= t.YellowThreshold {
			t.RedThreshold = t.YellowThreshold * 4
		}
	}
	return t
}

// lazyInit makes a zero-value HeaderMap usable.
func (m *HeaderMap) lazyInit() {
	if m.tuning.GrowthLoadFactor == 0 {
		m.tuning = DefaultTuning()
		m.danger.yellowAt = m.tuning.YellowThreshold
		m.danger.redAt = m.tuning.RedThreshold
	}
	if !m.seeded {
		m.seed = newSeed()
		m.seeded = true
	}
}

// Len returns the total number of stored values across all names.
func (m *HeaderMap) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map holds no values.
func (m *HeaderMap) IsEmpty() bool {
	return len(m.entries) == 0
}

// NameCount returns the number of distinct names currently stored.
func (m *HeaderMap) NameCount() int {
	return m.names
}

// Reserve grows storage so that at least n total values fit without
// reallocating, assuming worst-case all-distinct names.
func (m *HeaderMap) Reserve(n int) {
	m.lazyInit()
	if n > MaxEntries {
		n = MaxEntries
	}
	if cap(m.entries) < n {
		grown := make([]entry, len(m.entries), n)
		copy(grown, m.entries)
		m.entries = grown
	}
	want := tableSizeFor(n, m.tuning.GrowthLoadFactor)
	if want > len(m.indices) {
		m.growTable(want)
	}
}

// tableSizeFor returns the power-of-two table capacity that keeps n
// distinct names under the growth load factor.
func tableSizeFor(n int, loadFactor float64) int {
	c := minTableSize
	for float64(n) > loadFactor*float64(c) {
		c <<= 1
	}
	return c
}

// placement computes the index-table hash for a name under the map's
// current seed.
func (m *HeaderMap) placement(name Name) uint16 {
	return uint16(mixHash(m.seed, name.cachedHash()))
}

// probeDistance returns how far slot is from the hash's ideal slot.
func (m *HeaderMap) probeDistance(hash uint16, slot int) int {
	return (slot - int(hash)) & m.mask
}

// locate finds the index slot and head entry for a name. Read-only: the
// danger monitor is not touched. The early-termination rule is the Robin
// Hood invariant itself: once we have probed farther than the resident
// entry, the name cannot be stored past it.
//
// Allocation behavior: 0 allocs/op
func (m *HeaderMap) locate(name Name) (slot int, idx size, ok bool) {
	if m.names == 0 {
		return 0, noneIdx, false
	}
	h := m.placement(name)
	slot = int(h) & m.mask
	dist := 0
	for {
		p := m.indices[slot]
		if p.index == noneIdx {
			return slot, noneIdx, false
		}
		their := m.probeDistance(p.hash, slot)
		if dist > their {
			return slot, noneIdx, false
		}
		if p.hash == h && m.entries[p.index].name.Equal(name) {
			return slot, p.index, true
		}
		slot = (slot + 1) & m.mask
		dist++
	}
}

// ensureTable allocates or doubles the index table ahead of storing one
// more distinct name.
func (m *HeaderMap) ensureTable() {
	m.lazyInit()
	if len(m.indices) == 0 {
		m.growTable(minTableSize)
		return
	}
	if float64(m.names+1) > m.tuning.GrowthLoadFactor*float64(len(m.indices)) {
		m.growTable(len(m.indices) * 2)
	}
}

// growTable replaces the index table with one of newCap slots and rebuilds
// it from the live entries. This is the map's only O(n) mutation.
func (m *HeaderMap) growTable(newCap int) {
	m.indices = make([]pos, newCap)
	m.mask = newCap - 1
	for i := range m.indices {
		m.indices[i].index = noneIdx
	}
	m.reindex()
}

// reindex rebuilds the index table from the entry store under the current
// seed. Only chain heads get slots; extra values stay reachable through
// their links.
func (m *HeaderMap) reindex() {
	for i := range m.entries {
		e := &m.entries[i]
		if !e.first {
			continue
		}
		h := m.placement(e.name)
		e.hash = h
		slot := int(h) & m.mask
		dist := 0
		for {
			p := m.indices[slot]
			if p.index == noneIdx {
				m.indices[slot] = pos{index: size(i), hash: h}
				break
			}
			if m.probeDistance(p.hash, slot) < dist {
				m.shiftForward(slot, pos{index: size(i), hash: h})
				break
			}
			slot = (slot + 1) & m.mask
			dist++
		}
	}
}

// rehash redraws the placement seed and rebuilds the table in place. This
// is the danger monitor's Red response: an attacker-crafted header set
// loses its engineered collisions the moment the seed changes.
func (m *HeaderMap) rehash() {
	m.seed = newSeed()
	for i := range m.indices {
		m.indices[i].index = noneIdx
	}
	m.reindex()
	m.danger.reset()
}

// observe feeds an insert-path probe distance to the danger monitor and
// performs the defensive rehash when it trips Red.
func (m *HeaderMap) observe(dist int) {
	if m.danger.observe(dist) {
		m.rehash()
	}
}

// shiftForward inserts p at slot and forward-shifts displaced residents
// until an empty slot absorbs the chain.
func (m *HeaderMap) shiftForward(slot int, p pos) {
	for {
		cur := m.indices[slot]
		m.indices[slot] = p
		if cur.index == noneIdx {
			return
		}
		p = cur
		slot = (slot + 1) & m.mask
	}
}

// pushEntry appends a new entry and returns its index. Capacity has been
// checked by the caller.
func (m *HeaderMap) pushEntry(name Name, value Value, hash uint16, first bool) size {
	m.entries = append(m.entries, entry{
		name:  name,
		value: value,
		hash:  hash,
		next:  noneIdx,
		first: first,
	})
	return size(len(m.entries) - 1)
}

// findOrInsert is the shared insert-path probe: it returns the head entry
// for name, creating one holding value if the name was absent. existed
// reports which case happened; when false, value has been stored.
func (m *HeaderMap) findOrInsert(name Name, value Value) (idx size, existed bool) {
	h := m.placement(name)
	slot := int(h) & m.mask
	dist := 0
	for {
		p := m.indices[slot]
		if p.index == noneIdx {
			idx = m.pushEntry(name, value, h, true)
			m.indices[slot] = pos{index: idx, hash: h}
			m.names++
			m.observe(dist)
			return idx, false
		}
		their := m.probeDistance(p.hash, slot)
		if their < dist {
			// Robin Hood steal: the resident has probed less than
			// us, so it can afford to move on.
			idx = m.pushEntry(name, value, h, true)
			m.shiftForward(slot, pos{index: idx, hash: h})
			m.names++
			m.observe(dist)
			return idx, false
		}
		if p.hash == h && m.entries[p.index].name.Equal(name) {
			m.observe(dist)
			return p.index, true
		}
		slot = (slot + 1) & m.mask
		dist++
	}
}

// chainTail returns the last entry of the same-key chain starting at head.
func (m *HeaderMap) chainTail(head size) size {
	tail := head
	for m.entries[tail].next != noneIdx {
		tail = m.entries[tail].next
	}
	return tail
}

// Append adds value as an additional value for name, preserving all prior
// values and their order. Appending to an existing name costs one chain
// walk; no second hash or probe happens.
//
// Returns ErrCapacityExceeded when the map already holds MaxEntries
// values.
func (m *HeaderMap) Append(name Name, value Value) error {
	if len(m.entries) >= MaxEntries {
		return ErrCapacityExceeded
	}
	m.ensureTable()
	idx, existed := m.findOrInsert(name, value)
	if !existed {
		return nil
	}
	tail := m.chainTail(idx)
	extra := m.pushEntry(name, value, m.entries[idx].hash, false)
	m.entries[tail].next = extra
	return nil
}

// Insert stores value as the sole value for name and returns every value
// previously stored under it, in original insertion order. The returned
// slice is nil when the name was absent.
//
// A replaced name keeps its position in iteration order. The only
// possible error is ErrCapacityExceeded, and only when the name was
// absent (replacement never grows the map).
func (m *HeaderMap) Insert(name Name, value Value) ([]Value, error) {
	if len(m.entries) >= MaxEntries {
		if _, _, ok := m.locate(name); !ok {
			return nil, ErrCapacityExceeded
		}
	}
	m.ensureTable()
	idx, existed := m.findOrInsert(name, value)
	if !existed {
		return nil, nil
	}

	head := &m.entries[idx]
	prior := []Value{head.value}
	var extras []size
	for i := head.next; i != noneIdx; i = m.entries[i].next {
		prior = append(prior, m.entries[i].value)
		extras = append(extras, i)
	}
	head.value = value
	head.next = noneIdx
	m.compact(extras)
	return prior, nil
}

// Get returns the first-inserted value for name.
//
// Allocation behavior: 0 allocs/op
func (m *HeaderMap) Get(name Name) (Value, bool) {
	_, idx, ok := m.locate(name)
	if !ok {
		return Value{}, false
	}
	return m.entries[idx].value, true
}

// GetLast returns the most recently appended value for name.
func (m *HeaderMap) GetLast(name Name) (Value, bool) {
	_, idx, ok := m.locate(name)
	if !ok {
		return Value{}, false
	}
	return m.entries[m.chainTail(idx)].value, true
}

// Contains reports whether at least one value is stored under name.
//
// Allocation behavior: 0 allocs/op
func (m *HeaderMap) Contains(name Name) bool {
	_, _, ok := m.locate(name)
	return ok
}

// GetAll returns a restartable sequence over every value stored under
// name, in original insertion order. The sequence is empty when the name
// is absent. Each restart performs one fresh lookup; the walk itself is
// O(k) for k values.
func (m *HeaderMap) GetAll(name Name) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		_, idx, ok := m.locate(name)
		if !ok {
			return
		}
		for i := idx; i != noneIdx; i = m.entries[i].next {
			if !yield(m.entries[i].value) {
				return
			}
		}
	}
}

// Remove deletes every value stored under name and returns them in
// original insertion order. Removing an absent name returns nil and
// changes nothing.
func (m *HeaderMap) Remove(name Name) []Value {
	slot, idx, ok := m.locate(name)
	if !ok {
		return nil
	}

	var removed []Value
	var idxs []size
	for i := idx; i != noneIdx; i = m.entries[i].next {
		removed = append(removed, m.entries[i].value)
		idxs = append(idxs, i)
	}

	// Drop the index slot, then backward-shift the probe sequence so no
	// tombstone is left behind.
	m.indices[slot] = pos{index: noneIdx}
	m.backwardShift(slot)
	m.names--

	m.compact(idxs)
	return removed
}

// backwardShift walks the probe sequence after a freed slot, moving each
// displaced resident one slot back until an ideally-placed resident or an
// empty slot ends the run.
func (m *HeaderMap) backwardShift(freed int) {
	last := freed
	cur := (freed + 1) & m.mask
	for {
		p := m.indices[cur]
		if p.index == noneIdx {
			return
		}
		if m.probeDistance(p.hash, cur) == 0 {
			return
		}
		m.indices[last] = p
		m.indices[cur] = pos{index: noneIdx}
		last = cur
		cur = (cur + 1) & m.mask
	}
}

// compact removes the given entries (indices ascending) from the dense
// store by shifting later entries backward, then patches every same-key
// link and index slot that referenced a shifted entry. This keeps
// iteration order exactly equal to insertion order with no tombstones.
func (m *HeaderMap) compact(removed []size) {
	if len(removed) == 0 {
		return
	}

	w := int(removed[0])
	r := w
	k := 0
	for r < len(m.entries) {
		if k < len(removed) && size(r) == removed[k] {
			k++
			r++
			continue
		}
		m.entries[w] = m.entries[r]
		w++
		r++
	}
	// Release Name/Value references held by the vacated tail.
	tail := m.entries[w:]
	for i := range tail {
		tail[i] = entry{}
	}
	m.entries = m.entries[:w]

	adjust := func(i size) size {
		lo, hi := 0, len(removed)
		for lo < hi {
			mid := (lo + hi) / 2
			if removed[mid] < i {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		return i - size(lo)
	}
	for i := range m.entries {
		if m.entries[i].next != noneIdx {
			m.entries[i].next = adjust(m.entries[i].next)
		}
	}
	for s := range m.indices {
		if m.indices[s].index != noneIdx {
			m.indices[s].index = adjust(m.indices[s].index)
		}
	}
}

// Iter returns a restartable sequence over every stored (name, value)
// pair in overall insertion order, not grouped by name. A name with k
// values is yielded k times.
func (m *HeaderMap) Iter() iter.Seq2[Name, Value] {
	return func(yield func(Name, Value) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].name, m.entries[i].value) {
				return
			}
		}
	}
}

// Keys returns a restartable sequence over the distinct names currently
// stored, each yielded once, in order of first occurrence.
func (m *HeaderMap) Keys() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		for i := range m.entries {
			if m.entries[i].first && !yield(m.entries[i].name) {
				return
			}
		}
	}
}

// Values returns a restartable sequence over every stored value in
// overall insertion order.
func (m *HeaderMap) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].value) {
				return
			}
		}
	}
}

// VisitAll calls visitor for each stored (name, value) pair in overall
// insertion order. Iteration stops if visitor returns false.
//
// Allocation behavior: 0 allocs/op
func (m *HeaderMap) VisitAll(visitor func(Name, Value) bool) {
	for i := range m.entries {
		if !visitor(m.entries[i].name, m.entries[i].value) {
			return
		}
	}
}

// Clear empties the map while keeping its allocations for reuse.
func (m *HeaderMap) Clear() {
	for i := range m.entries {
		m.entries[i] = entry{}
	}
	m.entries = m.entries[:0]
	for i := range m.indices {
		m.indices[i] = pos{index: noneIdx}
	}
	m.names = 0
	m.danger.reset()
}

// Drain empties the map and returns a sequence over the removed (name,
// value) pairs in overall insertion order. The map is empty as soon as
// Drain returns; the sequence iterates the detached storage.
func (m *HeaderMap) Drain() iter.Seq2[Name, Value] {
	drained := m.entries
	m.entries = nil
	for i := range m.indices {
		m.indices[i] = pos{index: noneIdx}
	}
	m.names = 0
	m.danger.reset()

	return func(yield func(Name, Value) bool) {
		for i := range drained {
			if !yield(drained[i].name, drained[i].value) {
				return
			}
		}
	}
}

// Extend bulk-appends every pair of the sequence, preserving its order.
// On ErrCapacityExceeded the pairs appended so far remain stored.
func (m *HeaderMap) Extend(pairs iter.Seq2[Name, Value]) error {
	for name, value := range pairs {
		if err := m.Append(name, value); err != nil {
			return err
		}
	}
	return nil
}

// String renders the map for diagnostics in insertion order. Sensitive
// values are redacted by Value.String.
func (m *HeaderMap) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString("HeaderMap{")
	for i := range m.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`"`)
		b.WriteString(m.entries[i].name.String())
		b.WriteString(`": `)
		b.WriteString(m.entries[i].value.String())
	}
	b.WriteString("}")
	return b.String()
}
