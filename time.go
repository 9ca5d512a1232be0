package asn1

/*
time.go implements UTCTime (tag 23) and GeneralizedTime (tag 24).
CER/DER require the strict canonical textual forms described in
X.690 §11.7/§11.8; BER additionally tolerates looser legacy forms that
X.680 still permits under BER: for UTCTime, missing seconds and +/-hhmm
offsets instead of a literal 'Z'; for GeneralizedTime, a missing 'Z'
and ',' as the fractional separator.
*/

import (
	"strconv"
	"time"
)

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// UTCTime decodes the receiver as a UTCTime.
func (e *Element) UTCTime() (time.Time, error) {
	if e.tag != TagUTCTime {
		return time.Time{}, newErr(KindTagNumber, "UTCTime: unexpected tag ", itoa(e.tag))
	}
	if e.construction != Primitive {
		return time.Time{}, newErr(KindConstruction, "UTCTime must be primitive")
	}
	return parseUTCTime(string(e.value), e.rule)
}

func parseUTCTime(s string, rule Rule) (time.Time, error) {
	parseCore := func(yy, mo, dd, hh, mi, ss string) (time.Time, error) {
		if !digitsOnly(yy + mo + dd + hh + mi + ss) {
			return time.Time{}, newErr(KindValue, "UTCTime: non-digit in timestamp")
		}
		y, _ := strconv.Atoi(yy)
		year := 1900 + y
		if y < 80 {
			year = 2000 + y
		}
		mon, _ := strconv.Atoi(mo)
		day, _ := strconv.Atoi(dd)
		hour, _ := strconv.Atoi(hh)
		min, _ := strconv.Atoi(mi)
		sec := 0
		if ss != "" {
			sec, _ = strconv.Atoi(ss)
		}
		return time.Date(year, time.Month(mon), day, hour, min, sec, 0, time.UTC), nil
	}

	if rule != BER {
		if len(s) != 13 || s[12] != 'Z' {
			return time.Time{}, newErr(KindValue, "UTCTime: CER/DER require exactly YYMMDDhhmmssZ")
		}
		return parseCore(s[0:2], s[2:4], s[4:6], s[6:8], s[8:10], s[10:12])
	}

	// BER: tolerate missing seconds and +/-hhmm offsets in place of Z.
	body := s
	var offset string
	switch {
	case hasSfx(body, "Z"):
		body = body[:len(body)-1]
	case len(body) > 5 && (body[len(body)-5] == '+' || body[len(body)-5] == '-'):
		offset = body[len(body)-5:]
		body = body[:len(body)-5]
	default:
		return time.Time{}, newErr(KindValue, "UTCTime: missing trailing Z or UTC offset")
	}

	var t time.Time
	var err error
	switch len(body) {
	case 10:
		t, err = parseCore(body[0:2], body[2:4], body[4:6], body[6:8], body[8:10], "")
	case 12:
		t, err = parseCore(body[0:2], body[2:4], body[4:6], body[6:8], body[8:10], body[10:12])
	default:
		return time.Time{}, newErr(KindValue, "UTCTime: malformed timestamp")
	}
	if err != nil {
		return time.Time{}, err
	}
	if offset != "" {
		if !digitsOnly(offset[1:]) {
			return time.Time{}, newErr(KindValue, "UTCTime: malformed offset")
		}
		oh, _ := strconv.Atoi(offset[1:3])
		om, _ := strconv.Atoi(offset[3:5])
		secs := oh*3600 + om*60
		if offset[0] == '-' {
			secs = -secs
		}
		t = t.Add(-time.Duration(secs) * time.Second)
	}
	return t, nil
}

// SetUTCTime encodes t as a UTCTime, always in the canonical
// YYMMDDhhmmssZ form (valid under every rule).
func (e *Element) SetUTCTime(t time.Time) {
	u := t.UTC()
	s := u.Format("060102150405") + "Z"
	e.setRaw(ClassUniversal, Primitive, TagUTCTime, []byte(s))
}

// GeneralizedTime decodes the receiver as a GeneralizedTime.
func (e *Element) GeneralizedTime() (time.Time, error) {
	if e.tag != TagGeneralizedTime {
		return time.Time{}, newErr(KindTagNumber, "GeneralizedTime: unexpected tag ", itoa(e.tag))
	}
	if e.construction != Primitive {
		return time.Time{}, newErr(KindConstruction, "GeneralizedTime must be primitive")
	}
	return parseGeneralizedTime(string(e.value), e.rule)
}

func parseGeneralizedTime(s string, rule Rule) (time.Time, error) {
	if rule != BER {
		if len(s) < 15 {
			return time.Time{}, newErr(KindValue, "GeneralizedTime: too short")
		}
		if s[len(s)-1] != 'Z' {
			return time.Time{}, newErr(KindValue, "GeneralizedTime: CER/DER require a trailing Z")
		}
		base := s[:14]
		if !digitsOnly(base) {
			return time.Time{}, newErr(KindValue, "GeneralizedTime: non-digit in timestamp")
		}
		rest := s[14 : len(s)-1]
		var nanos int
		if len(rest) > 0 {
			if len(s) == 16 {
				return time.Time{}, newErr(KindValue, "GeneralizedTime: decimal point with no fractional digits")
			}
			if rest[0] != '.' {
				return time.Time{}, newErr(KindValue, "GeneralizedTime: fractional seconds must use '.'")
			}
			frac := rest[1:]
			if frac == "" || !digitsOnly(frac) {
				return time.Time{}, newErr(KindValue, "GeneralizedTime: malformed fractional seconds")
			}
			if frac[len(frac)-1] == '0' {
				return time.Time{}, newErr(KindValuePadding, "GeneralizedTime: trailing zero in fractional seconds")
			}
			nanos = fracToNanos(frac)
		}
		year, _ := strconv.Atoi(base[0:4])
		mon, _ := strconv.Atoi(base[4:6])
		day, _ := strconv.Atoi(base[6:8])
		hour, _ := strconv.Atoi(base[8:10])
		min, _ := strconv.Atoi(base[10:12])
		sec, _ := strconv.Atoi(base[12:14])
		return time.Date(year, time.Month(mon), day, hour, min, sec, nanos, time.UTC), nil
	}

	// BER: tolerate a missing Z and ',' as the fractional separator.
	body := s
	hasZ := hasSfx(body, "Z")
	if hasZ {
		body = body[:len(body)-1]
	}
	if len(body) < 14 {
		return time.Time{}, newErr(KindValue, "GeneralizedTime: too short")
	}
	base := body[:14]
	if !digitsOnly(base) {
		return time.Time{}, newErr(KindValue, "GeneralizedTime: non-digit in timestamp")
	}
	rest := body[14:]
	var nanos int
	if len(rest) > 0 {
		sep := rest[0]
		if sep != '.' && sep != ',' {
			return time.Time{}, newErr(KindValue, "GeneralizedTime: malformed fractional separator")
		}
		frac := rest[1:]
		if frac == "" || !digitsOnly(frac) {
			return time.Time{}, newErr(KindValue, "GeneralizedTime: malformed fractional seconds")
		}
		nanos = fracToNanos(frac)
	}
	year, _ := strconv.Atoi(base[0:4])
	mon, _ := strconv.Atoi(base[4:6])
	day, _ := strconv.Atoi(base[6:8])
	hour, _ := strconv.Atoi(base[8:10])
	min, _ := strconv.Atoi(base[10:12])
	sec, _ := strconv.Atoi(base[12:14])
	return time.Date(year, time.Month(mon), day, hour, min, sec, nanos, time.UTC), nil
}

func fracToNanos(frac string) int {
	for len(frac) < 9 {
		frac += "0"
	}
	frac = frac[:9]
	n, _ := strconv.Atoi(frac)
	return n
}

// SetGeneralizedTime encodes t as a GeneralizedTime, in canonical
// form: seconds precision with a trailing 'Z' and no fractional part
// unless t carries a sub-second component, in which case fractional
// digits are emitted with trailing zeros stripped.
func (e *Element) SetGeneralizedTime(t time.Time) {
	u := t.UTC()
	s := u.Format("20060102150405")
	if ns := u.Nanosecond(); ns != 0 {
		frac := strconv.Itoa(ns)
		for len(frac) < 9 {
			frac = "0" + frac
		}
		for len(frac) > 1 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		s += "." + frac
	}
	s += "Z"
	e.setRaw(ClassUniversal, Primitive, TagGeneralizedTime, []byte(s))
}
