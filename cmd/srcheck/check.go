package main

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	xgxthrow "github.com/xgx-io/xgx-throw"
	"github.com/xgx-io/xgx-throw/sr"
)

type findingKind string

const (
	findingMissing findingKind = "missing"
	findingUnknown findingKind = "unknown"
	findingArity   findingKind = "arity"
)

type finding struct {
	kind   findingKind
	key    string
	detail string
}

func (f finding) String() string {
	if f.detail == "" {
		return fmt.Sprintf("%s %s", f.kind, f.key)
	}
	return fmt.Sprintf("%s %s: %s", f.kind, f.key, f.detail)
}

var argIndex = regexp.MustCompile(`%\[(\d+)\]`)

// arity returns the highest explicit argument index used by text.
func arity(text string) int {
	n := 0
	for _, m := range argIndex.FindAllStringSubmatch(text, -1) {
		if i, err := strconv.Atoi(m[1]); err == nil && i > n {
			n = i
		}
	}
	return n
}

// checkBundle compares b against the resource keys and the English texts.
// Findings are ordered by kind, then key.
func checkBundle(b sr.Bundle, english map[string]string) []finding {
	keys := xgxthrow.ResourceKeys()
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	var missing, unknown, arityDiff []finding
	for _, k := range keys {
		text, ok := b.Messages[k]
		if !ok {
			missing = append(missing, finding{kind: findingMissing, key: k})
			continue
		}
		if want, got := arity(english[k]), arity(text); want != got {
			arityDiff = append(arityDiff, finding{
				kind:   findingArity,
				key:    k,
				detail: fmt.Sprintf("want=%d got=%d", want, got),
			})
		}
	}
	for k := range b.Messages {
		if !known[k] {
			unknown = append(unknown, finding{kind: findingUnknown, key: k})
		}
	}
	slices.SortFunc(unknown, func(a, b finding) int { return cmp.Compare(a.key, b.key) })

	return slices.Concat(missing, unknown, arityDiff)
}
