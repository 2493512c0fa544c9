package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/schemakit/schemakit/types"
)

// enumMarker is the micro-format token used inside column comments to
// declare an enumeration, e.g. 【枚举】：0-待处理，1-处理中，2-已完成.
// The marker, both colon widths, both comma widths and the value-label
// separators (-, — or :) are all part of the wire format shared with
// downstream consumers.
const enumMarker = "【枚举】"

var enumItemRe = regexp.MustCompile(`^(\d+)\s*[-—:]\s*(.*)$`)

// sentence-terminating punctuation that ends the enumeration list
const enumTerminators = "。.;；!！?？"

// DecodeEnum scans column comment text for the enumeration marker and
// decodes the ordered value-label pairs that follow it. Items that do not
// match the <digits><separator><label> shape are dropped; if no valid item
// remains the result is nil, the same as when no marker is present.
func DecodeEnum(comment string) []types.EnumEntry {
	idx := strings.Index(comment, enumMarker)
	if idx < 0 {
		return nil
	}
	rest := strings.TrimLeft(comment[idx+len(enumMarker):], " \t")

	r, size := utf8.DecodeRuneInString(rest)
	if r != ':' && r != '：' {
		return nil
	}
	rest = rest[size:]

	if end := strings.IndexAny(rest, enumTerminators); end >= 0 {
		rest = rest[:end]
	}

	var entries []types.EnumEntry
	rest = strings.ReplaceAll(rest, "，", ",")
	for _, item := range strings.Split(rest, ",") {
		m := enumItemRe.FindStringSubmatch(strings.TrimSpace(item))
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, types.EnumEntry{
			Value: value,
			Label: strings.TrimSpace(m[2]),
		})
	}
	return entries
}

// EncodeEnum renders entries back into the comment micro-format using the
// full-width punctuation of the source convention. Decoding the result
// reproduces the same entries.
func EncodeEnum(entries []types.EnumEntry) string {
	if len(entries) == 0 {
		return ""
	}
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = fmt.Sprintf("%d-%s", e.Value, e.Label)
	}
	return enumMarker + "：" + strings.Join(items, "，")
}
