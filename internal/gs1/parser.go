package gs1

// Parse extracts typed fields from a GS1 payload.
//
// The payload is a concatenation of AI(2)+value pairs with no
// separators: AI 01 carries a fixed 14-character GTIN, AI 17 a fixed
// 6-character YYMMDD expiration date, and AI 10 a variable-length lot
// number consuming the remainder of the string.
//
// Parse is best-effort: an unrecognized AI prefix or a truncated value
// stops the scan without recording a partial field, and a derivation
// failure (bad GTIN, impossible date) is returned as a non-fatal error
// alongside the record holding everything extracted up to that point.
func Parse(payload string) (Record, error) {
	rec := Record{Raw: payload}
	sc := scanner{payload: payload}

	for {
		ai, ok := sc.peekAI()
		if !ok {
			break
		}
		desc, ok := descriptors[ai]
		if !ok {
			break
		}
		sc.pos += aiLength

		var value string
		switch desc.kind {
		case fixedWidth:
			value, ok = sc.take(desc.length)
			if !ok {
				// Too few characters left for this field; never
				// record a truncated value.
				return rec, nil
			}
		case remainder:
			value = sc.rest()
		}

		if err := desc.assign(&rec, value); err != nil {
			return rec, err
		}
		if desc.kind == remainder {
			break
		}
	}
	return rec, nil
}
