package filament

// Entry is a cursor at a name's slot in a HeaderMap, occupied or vacant.
// It lets callers do get-or-insert and repeated appends with a single
// lookup instead of re-probing per operation.
//
// An Entry is a snapshot: any other mutation of the map invalidates it,
// and using a stale Entry is undefined. Re-call HeaderMap.Entry after
// interleaved mutations.
type Entry struct {
	m    *HeaderMap
	name Name
	idx  size // head entry when occupied
	ok   bool
}

// Entry returns a cursor at name's slot, whether or not the map currently
// holds values for it.
func (m *HeaderMap) Entry(name Name) Entry {
	_, idx, ok := m.locate(name)
	return Entry{m: m, name: name, idx: idx, ok: ok}
}

// Name returns the name the cursor addresses.
func (e *Entry) Name() Name {
	return e.name
}

// IsOccupied reports whether the map holds at least one value for the
// cursor's name.
func (e *Entry) IsOccupied() bool {
	return e.ok
}

// Get returns the first-inserted value at the cursor without a second
// lookup.
func (e *Entry) Get() (Value, bool) {
	if !e.ok {
		return Value{}, false
	}
	return e.m.entries[e.idx].value, true
}

// OrInsert returns the first-inserted value at the cursor, storing def
// first when the slot is vacant. The cursor is occupied afterwards.
func (e *Entry) OrInsert(def Value) (Value, error) {
	if e.ok {
		return e.m.entries[e.idx].value, nil
	}
	if err := e.insertFirst(def); err != nil {
		return Value{}, err
	}
	return def, nil
}

// OrInsertWith is OrInsert with a lazily computed default: produce runs
// only when the slot is vacant.
func (e *Entry) OrInsertWith(produce func() Value) (Value, error) {
	if e.ok {
		return e.m.entries[e.idx].value, nil
	}
	def := produce()
	if err := e.insertFirst(def); err != nil {
		return Value{}, err
	}
	return def, nil
}

// Append adds value under the cursor's name. On an occupied cursor this
// walks straight to the chain tail with no hashing or probing; on a
// vacant one it performs the single placement probe and occupies the
// cursor.
func (e *Entry) Append(value Value) error {
	if !e.ok {
		return e.insertFirst(value)
	}
	if len(e.m.entries) >= MaxEntries {
		return ErrCapacityExceeded
	}
	tail := e.m.chainTail(e.idx)
	extra := e.m.pushEntry(e.name, value, e.m.entries[e.idx].hash, false)
	e.m.entries[tail].next = extra
	return nil
}

// insertFirst places the name's head entry and moves the cursor onto it.
func (e *Entry) insertFirst(value Value) error {
	if len(e.m.entries) >= MaxEntries {
		return ErrCapacityExceeded
	}
	e.m.ensureTable()
	e.idx, _ = e.m.findOrInsert(e.name, value)
	e.ok = true
	return nil
}
