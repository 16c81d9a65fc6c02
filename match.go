package reggy

// PatternID identifies one pattern within a compiled set, by its index in
// the slice passed to Compile or New.
type PatternID = uint32

// Match is a single reported occurrence: pattern id plus an inclusive-start,
// exclusive-end byte span measured from the beginning of the stream (not
// the chunk it was found in).
type Match struct {
	PatternID PatternID
	Start     int
	End       int
}
