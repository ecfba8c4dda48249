package gs1

// aiLength is the number of characters in an Application Identifier prefix.
// Only two-character AIs are recognized.
const aiLength = 2

// fieldKind describes how an AI's value is delimited.
type fieldKind int

const (
	// fixedWidth values occupy a known number of characters.
	fixedWidth fieldKind = iota
	// remainder values consume everything left in the payload. An AI
	// with this kind is terminal; no further AIs are parsed after it.
	remainder
)

// descriptor maps an AI to its field layout and record assignment.
type descriptor struct {
	kind   fieldKind
	length int // valid for fixedWidth only
	assign func(*Record, string) error
}

// descriptors is the AI dispatch table. Adding an AI (e.g. 21 for
// serial number) is a data change here, not a control-flow change.
// AI 10 (lot) is treated as terminal because the payloads we decode
// carry no FNC1/GS separator after variable-length fields.
var descriptors = map[string]descriptor{
	"01": {kind: fixedWidth, length: 14, assign: assignGTIN},
	"17": {kind: fixedWidth, length: 6, assign: assignExpiration},
	"10": {kind: remainder, assign: assignLot},
}

// scanner walks a payload with a single integer cursor.
type scanner struct {
	payload string
	pos     int
}

// peekAI returns the two-character AI at the cursor without consuming it.
func (s *scanner) peekAI() (string, bool) {
	if s.pos+aiLength > len(s.payload) {
		return "", false
	}
	return s.payload[s.pos : s.pos+aiLength], true
}

// take consumes and returns the next n characters. It reports false
// without moving the cursor when fewer than n characters remain.
func (s *scanner) take(n int) (string, bool) {
	if s.pos+n > len(s.payload) {
		return "", false
	}
	v := s.payload[s.pos : s.pos+n]
	s.pos += n
	return v, true
}

// rest consumes and returns everything from the cursor to the end.
func (s *scanner) rest() string {
	v := s.payload[s.pos:]
	s.pos = len(s.payload)
	return v
}

func assignGTIN(r *Record, v string) error {
	r.GTIN = v
	ndc, err := GTINToNDC(v)
	if err != nil {
		return err
	}
	r.NDC = ndc
	return nil
}

func assignExpiration(r *Record, v string) error {
	r.ExpirationRaw = v
	formatted, err := FormatExpiration(v)
	if err != nil {
		return err
	}
	r.Expiration = formatted
	return nil
}

func assignLot(r *Record, v string) error {
	r.Lot = v
	return nil
}
