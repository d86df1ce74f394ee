package trace

/* ---------------------- failure table (LPS) build ---------------------- */

// LPSInit opens the failure-table build.
type LPSInit struct {
	Note
	PatternLen int
	Table      []int
}

// LPSMatch records pattern[I] extending the current prefix to Length.
type LPSMatch struct {
	Note
	I      int
	Length int
	Char   byte
	Table  []int
}

// LPSFallback records length falling back from From to To while I stays put.
type LPSFallback struct {
	Note
	I     int
	From  int
	To    int
	Table []int
}

// LPSZero records table[I] = 0 after no prefix could be extended.
type LPSZero struct {
	Note
	I     int
	Table []int
}

// LPSComplete closes the build with the final table.
type LPSComplete struct {
	Note
	Table []int
}

/* -------------------------- exact-match scan --------------------------- */

// KMPInit opens the exact-match scan.
type KMPInit struct {
	Note
	TextLen    int
	PatternLen int
	Table      []int
}

// KMPMatch records text[I] == pattern[J].
type KMPMatch struct {
	Note
	I           int
	J           int
	Char        byte
	Comparisons int
}

// KMPFound records a full occurrence at Position; scanning resumes with NextJ.
// MatchCount includes this occurrence. Only KMPComplete carries the list.
type KMPFound struct {
	Note
	Position    int
	I           int
	NextJ       int
	MatchCount  int
	Comparisons int
}

// KMPShift records a mismatch at text[I] that moves j from From to To.
type KMPShift struct {
	Note
	I           int
	From        int
	To          int
	TextChar    byte
	PatternChar byte
	Comparisons int
}

// KMPAdvance records a mismatch with j == 0; the text index moves past I.
type KMPAdvance struct {
	Note
	I           int
	TextChar    byte
	PatternChar byte
	Comparisons int
}

// KMPComplete closes the scan.
type KMPComplete struct {
	Note
	Matches     []int
	Comparisons int
}

/* --------------------------- pattern hashing --------------------------- */

// HashInit opens the pattern hash.
type HashInit struct {
	Note
	Base    int64
	Modulus int64
}

// HashStep folds pattern[I] into the running hash.
type HashStep struct {
	Note
	I      int
	Char   byte
	Before int64
	After  int64
}

// HashComplete closes the pattern hash.
type HashComplete struct {
	Note
	Hash int64
}

/* -------------------------- rolling-hash scan -------------------------- */

// CharCheck is one character comparison made while verifying a window.
type CharCheck struct {
	PatternIndex int
	TextIndex    int
	PatternChar  byte
	TextChar     byte
	Equal        bool
}

// RKInit opens the rolling-hash scan.
type RKInit struct {
	Note
	PatternHash int64
	WindowHash  int64
	HighOrder   int64
	Window      string
}

// RKHashMatch records a window whose hash equals the pattern hash.
type RKHashMatch struct {
	Note
	Position        int
	Window          string
	WindowHash      int64
	PatternHash     int64
	HashComparisons int
}

// RKHashMismatch records a window whose hash differs from the pattern hash.
type RKHashMismatch struct {
	Note
	Position        int
	Window          string
	WindowHash      int64
	PatternHash     int64
	HashComparisons int
}

// RKFound records a hash match confirmed character by character.
// MatchCount includes this occurrence.
type RKFound struct {
	Note
	Position        int
	Checks          []CharCheck
	MatchCount      int
	CharComparisons int
}

// RKSpuriousHit records a hash match that failed verification at MismatchAt.
type RKSpuriousHit struct {
	Note
	Position        int
	MismatchAt      int
	Checks          []CharCheck
	CharComparisons int
}

// RKRoll records the O(1) update from window Position-1 to window Position.
type RKRoll struct {
	Note
	Position int
	Removed  byte
	Added    byte
	OldHash  int64
	NewHash  int64
	Window   string
}

// RKComplete closes the scan.
type RKComplete struct {
	Note
	Matches         []int
	HashComparisons int
	CharComparisons int
	SpuriousHits    int
}

func (LPSInit) Kind() Kind     { return KindInit }
func (LPSMatch) Kind() Kind    { return KindMatch }
func (LPSFallback) Kind() Kind { return KindFallback }
func (LPSZero) Kind() Kind     { return KindZero }
func (LPSComplete) Kind() Kind { return KindComplete }

func (KMPInit) Kind() Kind     { return KindInit }
func (KMPMatch) Kind() Kind    { return KindMatch }
func (KMPFound) Kind() Kind    { return KindFound }
func (KMPShift) Kind() Kind    { return KindShift }
func (KMPAdvance) Kind() Kind  { return KindAdvance }
func (KMPComplete) Kind() Kind { return KindComplete }

func (HashInit) Kind() Kind     { return KindInit }
func (HashStep) Kind() Kind     { return KindHashStep }
func (HashComplete) Kind() Kind { return KindComplete }

func (RKInit) Kind() Kind         { return KindInit }
func (RKHashMatch) Kind() Kind    { return KindHashMatch }
func (RKHashMismatch) Kind() Kind { return KindHashMismatch }
func (RKFound) Kind() Kind        { return KindFound }
func (RKSpuriousHit) Kind() Kind  { return KindSpuriousHit }
func (RKRoll) Kind() Kind         { return KindRollingHash }
func (RKComplete) Kind() Kind     { return KindComplete }

func (LPSInit) sealed()        {}
func (LPSMatch) sealed()       {}
func (LPSFallback) sealed()    {}
func (LPSZero) sealed()        {}
func (LPSComplete) sealed()    {}
func (KMPInit) sealed()        {}
func (KMPMatch) sealed()       {}
func (KMPFound) sealed()       {}
func (KMPShift) sealed()       {}
func (KMPAdvance) sealed()     {}
func (KMPComplete) sealed()    {}
func (HashInit) sealed()       {}
func (HashStep) sealed()       {}
func (HashComplete) sealed()   {}
func (RKInit) sealed()         {}
func (RKHashMatch) sealed()    {}
func (RKHashMismatch) sealed() {}
func (RKFound) sealed()        {}
func (RKSpuriousHit) sealed()  {}
func (RKRoll) sealed()         {}
func (RKComplete) sealed()     {}
