package controller

import "strings"

// PathVar is one {name} or {name:pattern} segment of a route path.
type PathVar struct {
	Name    string
	Pattern string
}

// defaultVarPattern is what gorilla/mux matches for a variable without a
// pattern.
const defaultVarPattern = "[^/]+"

// braceIndices returns the start and end offsets of every top-level {...}
// group, the way gorilla/mux scans templates. Unbalanced braces yield false.
func braceIndices(s string) ([]int, bool) {
	var level, start int
	var idxs []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				start = i
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, start, i+1)
			} else if level < 0 {
				return nil, false
			}
		}
	}
	if level != 0 {
		return nil, false
	}
	return idxs, true
}

func parseVar(group string) PathVar {
	inner := group[1 : len(group)-1]
	name, pattern, _ := strings.Cut(inner, ":")
	return PathVar{Name: strings.TrimSpace(name), Pattern: strings.TrimSpace(pattern)}
}

func rewriteVars(tpl string, fn func(PathVar) string) string {
	idxs, ok := braceIndices(tpl)
	if !ok {
		return tpl
	}

	var b strings.Builder
	end := 0
	for i := 0; i < len(idxs); i += 2 {
		b.WriteString(tpl[end:idxs[i]])
		b.WriteString(fn(parseVar(tpl[idxs[i]:idxs[i+1]])))
		end = idxs[i+1]
	}
	b.WriteString(tpl[end:])
	return b.String()
}

// PathVars lists the variables of a route path in order.
func PathVars(tpl string) []PathVar {
	idxs, ok := braceIndices(tpl)
	if !ok {
		return nil
	}

	vars := make([]PathVar, 0, len(idxs)/2)
	for i := 0; i < len(idxs); i += 2 {
		vars = append(vars, parseVar(tpl[idxs[i]:idxs[i+1]]))
	}
	return vars
}

// MatchKey reduces a route path to what the matcher sees: variable names are
// dropped and implicit patterns spelled out, so /items/{id} and /items/{key}
// share a key while /items/{id:[0-9]+} does not.
func MatchKey(tpl string) string {
	return rewriteVars(tpl, func(v PathVar) string {
		pattern := v.Pattern
		if pattern == "" {
			pattern = defaultVarPattern
		}
		return "{" + pattern + "}"
	})
}

// BarePath drops variable patterns, turning /x/{id:[0-9]{2}} into /x/{id}.
func BarePath(tpl string) string {
	return rewriteVars(tpl, func(v PathVar) string {
		return "{" + v.Name + "}"
	})
}
