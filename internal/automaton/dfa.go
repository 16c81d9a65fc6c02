package automaton

import (
	"sort"
	"strings"

	"github.com/coregx/reggy/internal/conv"
	"github.com/coregx/reggy/internal/lang"
	"github.com/coregx/reggy/internal/sparse"
)

// StateID identifies a DFA state. The zero value, DeadState, is never
// produced by a successful transition into a live state.
type StateID uint32

// DeadState is returned by Step once every thread of execution has died.
// A dead state is permanent: Step never revives a dead state on
// subsequent bytes.
const DeadState StateID = 0

// dfaState is the lazily-computed content of one determinized state: the
// sorted set of live NFA instruction offsets it represents (its cache key)
// plus which patterns are already satisfied by reaching it.
type dfaState struct {
	nfaSet  []uint32 // sorted, deduplicated opByteRange offsets (live threads)
	matches []PatternID
}

// DFA lazily determinizes an nfa on demand and caches every state it
// discovers, keyed by the exact set of live NFA threads. No cache
// eviction: reggy compiles a small pattern set once per Search and keeps
// it for the Search's lifetime.
type DFA struct {
	net    *nfa
	states []dfaState // index 0 is always DeadState (empty set)
	cache  map[string]StateID
	start  StateID
}

// Build compiles patterns into a DFA driver ready for InitialState/Step.
func Build(patterns []*lang.Node) (*DFA, error) {
	net, err := buildNFA(patterns)
	if err != nil {
		return nil, &BuildError{Pattern: -1, Err: err}
	}
	d := &DFA{
		net:    net,
		states: []dfaState{{}}, // DeadState: empty set, no matches
		cache:  make(map[string]StateID),
	}
	d.cache[""] = DeadState

	visited := sparse.NewSparseSet(conv.IntToUint32(len(net.insts)))
	var byteOffs []uint32
	var matches []PatternID
	for _, s := range net.starts {
		d.closure(s, visited, &byteOffs, &matches)
	}
	d.start = d.intern(byteOffs, matches)
	return d, nil
}

// InitialState returns the state to begin matching from.
func (d *DFA) InitialState() StateID { return d.start }

// IsDead reports whether state can never reach a match on any further
// input. Once dead, always dead.
func (d *DFA) IsDead(state StateID) bool { return state == DeadState }

// IsMatch reports whether state corresponds to at least one pattern having
// matched the bytes consumed so far.
func (d *DFA) IsMatch(state StateID) bool {
	return len(d.states[state].matches) > 0
}

// MatchPatterns returns every pattern matched at state, in ascending order.
func (d *DFA) MatchPatterns(state StateID) []PatternID {
	return d.states[state].matches
}

// EOIClose is a no-op: reggy's dialect has no end-of-input anchors (no
// `$`), so a state's already-recorded matches are exactly the matches
// valid at end of input. The named operation exists so the searcher has
// a single call site to make that explicit, in case a future dialect
// extension adds EOI-sensitive atoms.
func (d *DFA) EOIClose(state StateID) StateID { return state }

// Step advances state by one input byte. It computes the destination's
// epsilon-closure on every call and interns it, so equal destination sets
// share one cached StateID; transitions themselves are not cached.
func (d *DFA) Step(state StateID, b byte) StateID {
	if state == DeadState {
		return DeadState
	}
	visited := sparse.NewSparseSet(conv.IntToUint32(len(d.net.insts)))
	var byteOffs []uint32
	var matches []PatternID
	for _, off := range d.states[state].nfaSet {
		ins := d.net.insts[off]
		if ins.op == opByteRange && ins.lo <= b && b <= ins.hi {
			d.closure(ins.out, visited, &byteOffs, &matches)
		}
	}
	return d.intern(byteOffs, matches)
}

// closure follows opSplit/opNop epsilon edges from off, collecting every
// opByteRange offset reached into byteOffs and every opMatch pattern
// reached into matches. visited guards against infinite recursion on
// cyclic split chains (Kleene star/plus) by marking every instruction
// offset, epsilon or not, the first time it's seen.
func (d *DFA) closure(off uint32, visited *sparse.SparseSet, byteOffs *[]uint32, matches *[]PatternID) {
	if off == noTarget || visited.Contains(off) {
		return
	}
	visited.Insert(off)

	ins := d.net.insts[off]
	switch ins.op {
	case opByteRange:
		*byteOffs = append(*byteOffs, off)
	case opSplit:
		d.closure(ins.out, visited, byteOffs, matches)
		d.closure(ins.out2, visited, byteOffs, matches)
	case opNop:
		d.closure(ins.out, visited, byteOffs, matches)
	case opMatch:
		*matches = append(*matches, ins.pattern)
	}
}

// intern canonicalizes a closure result into an interned dfaState,
// returning its cached StateID if an equal state already exists.
func (d *DFA) intern(byteOffs []uint32, matches []PatternID) StateID {
	sort.Slice(byteOffs, func(i, j int) bool { return byteOffs[i] < byteOffs[j] })
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })

	key := signatureKey(byteOffs) + "|" + signatureKey(matchOffsets(matches))
	if id, ok := d.cache[key]; ok {
		return id
	}
	if len(byteOffs) == 0 && len(matches) == 0 {
		d.cache[key] = DeadState
		return DeadState
	}
	id := StateID(len(d.states))
	d.states = append(d.states, dfaState{nfaSet: byteOffs, matches: matches})
	d.cache[key] = id
	return id
}

func matchOffsets(ms []PatternID) []uint32 {
	out := make([]uint32, len(ms))
	for i, m := range ms {
		out[i] = uint32(m)
	}
	return out
}

func signatureKey(offs []uint32) string {
	var sb strings.Builder
	for _, o := range offs {
		sb.WriteByte(byte(o))
		sb.WriteByte(byte(o >> 8))
		sb.WriteByte(byte(o >> 16))
		sb.WriteByte(byte(o >> 24))
	}
	return sb.String()
}
