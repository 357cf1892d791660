package gennorm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/icu4g/ucore/uprops"
)

// ParseError reports a malformed source line, position-tagged the way
// parser.Error tags a bad assembly line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseErrors collects every malformed line found while ingesting a
// UnicodeData-style file, mirroring parser.ErrorList's "collect, don't
// stop on the first problem" shape.
type ParseErrors struct {
	Errors []*ParseError
}

func (el *ParseErrors) add(line int, format string, args ...any) {
	el.Errors = append(el.Errors, &ParseError{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (el *ParseErrors) HasErrors() bool { return len(el.Errors) > 0 }

func (el *ParseErrors) Error() string {
	var sb strings.Builder
	for _, e := range el.Errors {
		sb.WriteString(e.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseUnicodeData reads a semicolon-delimited UnicodeData.txt-style
// stream — one record per line, 15 fields: code point, name, general
// category, canonical combining class, bidi class, decomposition,
// decimal-digit value, digit value, numeric value, mirrored (Y/N),
// obsolete fields, uppercase/lowercase/titlecase mappings. Lines starting
// with '#' or blank lines are skipped. Malformed lines are collected into
// the returned *ParseErrors rather than aborting the scan, so a caller can
// report every problem in one pass.
func ParseUnicodeData(r io.Reader) ([]SourceRecord, *ParseErrors) {
	var records []SourceRecord
	errs := &ParseErrors{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			errs.add(lineNo, "%s", err)
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}

func parseLine(line string) (SourceRecord, error) {
	fields := strings.Split(line, ";")
	if len(fields) < 14 {
		return SourceRecord{}, fmt.Errorf("expected at least 14 ';'-delimited fields, got %d", len(fields))
	}

	cp, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 16, 32)
	if err != nil {
		return SourceRecord{}, fmt.Errorf("invalid code point %q: %w", fields[0], err)
	}

	cat, ok := uprops.ParseCategory(strings.TrimSpace(fields[2]))
	if !ok {
		return SourceRecord{}, fmt.Errorf("unknown general category %q", fields[2])
	}

	cc, err := strconv.ParseUint(strings.TrimSpace(fields[3]), 10, 8)
	if err != nil {
		return SourceRecord{}, fmt.Errorf("invalid combining class %q: %w", fields[3], err)
	}

	bidi, ok := uprops.ParseBidiClass(strings.TrimSpace(fields[4]))
	if !ok {
		return SourceRecord{}, fmt.Errorf("unknown bidi class %q", fields[4])
	}

	decompType, decomp, err := parseDecomposition(strings.TrimSpace(fields[5]))
	if err != nil {
		return SourceRecord{}, fmt.Errorf("invalid decomposition %q: %w", fields[5], err)
	}

	rec := SourceRecord{
		CodePoint:      rune(cp),
		Category:       cat,
		CombiningClass: uint8(cc),
		Bidi:           bidi,
		Mirrored:       strings.TrimSpace(fields[9]) == "Y",
		DecompType:     decompType,
		Decomposition:  decomp,
	}

	if v := strings.TrimSpace(fields[7]); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return SourceRecord{}, fmt.Errorf("invalid digit value %q: %w", v, err)
		}
		rec.HasDigit = true
		rec.DigitValue = int32(n)
	}
	if v := strings.TrimSpace(fields[8]); v != "" {
		rec.HasNumeric = true
		num, den, err := parseNumeric(v)
		if err != nil {
			return SourceRecord{}, fmt.Errorf("invalid numeric value %q: %w", v, err)
		}
		rec.NumeratorValue, rec.DenominatorValue = num, den
	}

	if len(fields) > 12 {
		if v := strings.TrimSpace(fields[12]); v != "" {
			c, err := strconv.ParseInt(v, 16, 32)
			if err != nil {
				return SourceRecord{}, fmt.Errorf("invalid uppercase mapping %q: %w", v, err)
			}
			rec.HasUppercase, rec.Uppercase = true, rune(c)
		}
	}
	if len(fields) > 13 {
		if v := strings.TrimSpace(fields[13]); v != "" {
			c, err := strconv.ParseInt(v, 16, 32)
			if err != nil {
				return SourceRecord{}, fmt.Errorf("invalid lowercase mapping %q: %w", v, err)
			}
			rec.HasLowercase, rec.Lowercase = true, rune(c)
		}
	}
	if len(fields) > 14 {
		if v := strings.TrimSpace(fields[14]); v != "" {
			c, err := strconv.ParseInt(v, 16, 32)
			if err != nil {
				return SourceRecord{}, fmt.Errorf("invalid titlecase mapping %q: %w", v, err)
			}
			rec.HasTitlecase, rec.Titlecase = true, rune(c)
		}
	}

	return rec, nil
}

// ParseExclusions reads a CompositionExclusions.txt-style stream: one code
// point per line, optionally followed by a '#' comment, the way
// NormalizationTest.txt's sibling exclusions list is published. Blank lines
// and comment-only lines are skipped.
func ParseExclusions(r io.Reader) (map[rune]bool, error) {
	exclusions := make(map[rune]bool)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}
		cp, err := strconv.ParseInt(line, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid code point %q: %w", lineNo, line, err)
		}
		exclusions[rune(cp)] = true
	}
	return exclusions, nil
}

// parseNumeric parses UnicodeData's numeric-value field, which is either a
// plain integer or a "n/d" fraction (e.g. "1/3" for U+2153 VULGAR FRACTION
// ONE THIRD).
func parseNumeric(v string) (num, den int32, err error) {
	if slash := strings.IndexByte(v, '/'); slash >= 0 {
		n, err1 := strconv.ParseInt(v[:slash], 10, 32)
		d, err2 := strconv.ParseInt(v[slash+1:], 10, 32)
		if err1 != nil {
			return 0, 0, err1
		}
		if err2 != nil {
			return 0, 0, err2
		}
		return int32(n), int32(d), nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return int32(n), 1, nil
}

func parseDecomposition(field string) (DecompType, []rune, error) {
	if field == "" {
		return DecompNone, nil, nil
	}
	tag := DecompCanonical
	if strings.HasPrefix(field, "<") {
		tag = DecompCompatibility
		if idx := strings.IndexByte(field, '>'); idx >= 0 {
			field = strings.TrimSpace(field[idx+1:])
		}
	}
	parts := strings.Fields(field)
	runes := make([]rune, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(p, 16, 32)
		if err != nil {
			return DecompNone, nil, err
		}
		runes = append(runes, rune(v))
	}
	return tag, runes, nil
}
