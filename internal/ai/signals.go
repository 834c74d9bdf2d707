package ai

// SignalKind is a partner signal emitted when a seat leads a trick.
type SignalKind int

const (
	LeadingTrumps SignalKind = iota + 1 // drawing trumps from a long trump suit
	NeedTrump                           // short in trumps, asks partner to lead them
	HelpingTrump                        // answering a partner's trump request
	NeedHelp                            // weak hand, partner should win whenever possible
	StrongSuit                          // leading from a long suit headed by K or better
)

func (k SignalKind) String() string {
	switch k {
	case LeadingTrumps:
		return "leading_trumps"
	case NeedTrump:
		return "need_trump"
	case HelpingTrump:
		return "helping_trump"
	case NeedHelp:
		return "need_help"
	case StrongSuit:
		return "strong_suit"
	default:
		return "unknown"
	}
}

// Signal is one entry of the signal log.
type Signal struct {
	Seat     int        `json:"seat"`
	Kind     SignalKind `json:"kind"`
	TrickSeq int        `json:"trick_seq"`
}

// SignalCapacity bounds the number of remembered signals.
const SignalCapacity = 5

// SignalLog is a fixed-size ring buffer of the most recent signals.
// A nil log reads as empty and ignores writes.
type SignalLog struct {
	buf  [SignalCapacity]Signal
	next int
	size int
}

// NewSignalLog returns an empty log.
func NewSignalLog() *SignalLog {
	return &SignalLog{}
}

// Add records s, evicting the oldest entry when full.
func (l *SignalLog) Add(s Signal) {
	if l == nil {
		return
	}
	l.buf[l.next] = s
	l.next = (l.next + 1) % SignalCapacity
	if l.size < SignalCapacity {
		l.size++
	}
}

// Len returns the number of stored signals.
func (l *SignalLog) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// All returns the stored signals, oldest first.
func (l *SignalLog) All() []Signal {
	if l == nil {
		return nil
	}
	out := make([]Signal, 0, l.size)
	start := (l.next - l.size + SignalCapacity) % SignalCapacity
	for i := 0; i < l.size; i++ {
		out = append(out, l.buf[(start+i)%SignalCapacity])
	}
	return out
}

// LastFrom returns the most recent signal emitted by seat.
func (l *SignalLog) LastFrom(seat int) (Signal, bool) {
	if l == nil {
		return Signal{}, false
	}
	for i := 1; i <= l.size; i++ {
		s := l.buf[(l.next-i+SignalCapacity)%SignalCapacity]
		if s.Seat == seat {
			return s, true
		}
	}
	return Signal{}, false
}

// Reset forgets every signal.
func (l *SignalLog) Reset() {
	if l == nil {
		return
	}
	*l = SignalLog{}
}

// Clone returns an independent copy.
func (l *SignalLog) Clone() *SignalLog {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
